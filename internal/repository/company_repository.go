package repository

import (
	"context"
	"database/sql"
	"errors"

	"jobboard/internal/database"
	"jobboard/internal/domain/company"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCompanyNotFound = errors.New("company not found")

type CompanyRepository interface {
	Create(ctx context.Context, c company.Company) error
	GetByID(ctx context.Context, id uuid.UUID) (company.Company, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]company.Company, error)
	ExistsByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (bool, error)
	Update(ctx context.Context, c company.Company) error
}

type PostgresCompanyRepository struct {
	db database.DB
}

func NewPostgresCompanyRepository(db database.DB) *PostgresCompanyRepository {
	return &PostgresCompanyRepository{db: db}
}

const companyColumns = `id, name, description, website, location, logo, owner_id, created_at, updated_at`

func (r *PostgresCompanyRepository) Create(ctx context.Context, c company.Company) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO companies (id, name, description, website, location, logo, owner_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Name, c.Description, c.Website, c.Location, c.Logo, c.OwnerID,
	)
	return err
}

func (r *PostgresCompanyRepository) GetByID(ctx context.Context, id uuid.UUID) (company.Company, error) {
	row := r.db.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
	return scanCompany(row)
}

func (r *PostgresCompanyRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]company.Company, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE owner_id = $1 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]company.Company, 0)
	for rows.Next() {
		var c company.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Website, &c.Location, &c.Logo, &c.OwnerID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCompanyRepository) ExistsByOwnerAndName(ctx context.Context, ownerID uuid.UUID, name string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM companies WHERE owner_id = $1 AND LOWER(name) = LOWER($2))`,
		ownerID, name,
	)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresCompanyRepository) Update(ctx context.Context, c company.Company) error {
	affected, err := r.db.Exec(ctx,
		`UPDATE companies SET name = $2, description = $3, website = $4, location = $5, logo = $6, updated_at = now()
		 WHERE id = $1`,
		c.ID, c.Name, c.Description, c.Website, c.Location, c.Logo,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrCompanyNotFound
	}
	return nil
}

func scanCompany(row database.Row) (company.Company, error) {
	var c company.Company
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Website, &c.Location, &c.Logo, &c.OwnerID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, ErrCompanyNotFound
		}
		return company.Company{}, err
	}
	return c, nil
}
