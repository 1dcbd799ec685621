package repository

import (
	"context"
	"database/sql"
	"errors"

	"jobboard/internal/database"
	"jobboard/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, full_name, email, phone_number, password_hash, role,
	bio, skills, resume, resume_original_name, profile_photo, created_at, updated_at`

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, full_name, email, phone_number, password_hash, role, bio, skills, resume, resume_original_name, profile_photo)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		u.ID, u.FullName, u.Email, u.PhoneNumber, u.PasswordHash, u.Role,
		u.Profile.Bio, skillsOrEmpty(u.Profile.Skills), u.Profile.Resume,
		u.Profile.ResumeOriginalName, u.Profile.ProfilePhoto,
	)
	return err
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresUserRepository) Update(ctx context.Context, u user.User) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE users SET full_name = $2, email = $3, phone_number = $4, password_hash = $5,
			bio = $6, skills = $7, resume = $8, resume_original_name = $9, profile_photo = $10,
			updated_at = now()
		 WHERE id = $1`,
		u.ID, u.FullName, u.Email, u.PhoneNumber, u.PasswordHash,
		u.Profile.Bio, skillsOrEmpty(u.Profile.Skills), u.Profile.Resume,
		u.Profile.ResumeOriginalName, u.Profile.ProfilePhoto,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.FullName, &u.Email, &u.PhoneNumber, &u.PasswordHash, &u.Role,
		&u.Profile.Bio, &u.Profile.Skills, &u.Profile.Resume,
		&u.Profile.ResumeOriginalName, &u.Profile.ProfilePhoto,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	if u.Profile.Skills == nil {
		u.Profile.Skills = []string{}
	}
	return u, nil
}

func skillsOrEmpty(skills []string) []string {
	if skills == nil {
		return []string{}
	}
	return skills
}
