package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"jobboard/internal/database"
	"jobboard/internal/domain/application"
	"jobboard/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("already applied to this job")
)

// AppliedJobRow is the slice of a prior application the recommendation flow
// needs: the job id for exclusion plus the fields preferences derive from.
type AppliedJobRow struct {
	JobID           uuid.UUID
	Requirements    []string
	Location        string
	JobType         string
	ExperienceLevel int
}

// SeekerApplication is an application with its job and company expanded, as
// shown on the applicant's "my applications" view.
type SeekerApplication struct {
	application.Application
	Job job.WithCompany
}

// JobApplicant is an application with its applicant expanded, as shown on the
// recruiter's applicant review table.
type JobApplicant struct {
	application.Application
	FullName    string
	Email       string
	PhoneNumber string
	Resume      string
	Skills      []string
}

type ApplicationRepository interface {
	Create(ctx context.Context, a application.Application) error
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]SeekerApplication, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]JobApplicant, error)
	ListAppliedJobs(ctx context.Context, applicantID uuid.UUID) ([]AppliedJobRow, error)
	ListIDsByJob(ctx context.Context, jobID uuid.UUID) ([]uuid.UUID, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (application.Application, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, job_id, applicant_id, status) VALUES ($1, $2, $3, $4)`,
		a.ID, a.JobID, a.ApplicantID, a.Status,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *PostgresApplicationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]SeekerApplication, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.job_id, a.applicant_id, a.status, a.created_at, a.updated_at, `+jobWithCompanyColumns+`
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 JOIN companies c ON c.id = j.company_id
		 WHERE a.applicant_id = $1
		 ORDER BY a.created_at DESC`,
		applicantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SeekerApplication, 0)
	for rows.Next() {
		var sa SeekerApplication
		dests := []any{&sa.ID, &sa.JobID, &sa.ApplicantID, &sa.Status, &sa.CreatedAt, &sa.UpdatedAt}
		dests = append(dests,
			&sa.Job.ID, &sa.Job.Title, &sa.Job.Description, &sa.Job.Requirements, &sa.Job.Salary,
			&sa.Job.Location, &sa.Job.JobType, &sa.Job.ExperienceLevel, &sa.Job.Position,
			&sa.Job.CompanyID, &sa.Job.CreatedBy, &sa.Job.CreatedAt,
			&sa.Job.Company.ID, &sa.Job.Company.Name, &sa.Job.Company.Description, &sa.Job.Company.Website,
			&sa.Job.Company.Location, &sa.Job.Company.Logo, &sa.Job.Company.OwnerID,
			&sa.Job.Company.CreatedAt, &sa.Job.Company.UpdatedAt,
		)
		if err := rows.Scan(dests...); err != nil {
			return nil, err
		}
		if sa.Job.Requirements == nil {
			sa.Job.Requirements = []string{}
		}
		out = append(out, sa)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]JobApplicant, error) {
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.job_id, a.applicant_id, a.status, a.created_at, a.updated_at,
			u.full_name, u.email, u.phone_number, u.resume, u.skills
		 FROM applications a
		 JOIN users u ON u.id = a.applicant_id
		 WHERE a.job_id = $1
		 ORDER BY a.created_at DESC`,
		jobID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobApplicant, 0)
	for rows.Next() {
		var ja JobApplicant
		if err := rows.Scan(&ja.ID, &ja.JobID, &ja.ApplicantID, &ja.Status, &ja.CreatedAt, &ja.UpdatedAt,
			&ja.FullName, &ja.Email, &ja.PhoneNumber, &ja.Resume, &ja.Skills); err != nil {
			return nil, err
		}
		if ja.Skills == nil {
			ja.Skills = []string{}
		}
		out = append(out, ja)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListAppliedJobs resolves each of the applicant's applications to its job.
// Applications whose job no longer exists drop out of the join, matching the
// skip-silently rule for unresolvable references.
func (r *PostgresApplicationRepository) ListAppliedJobs(ctx context.Context, applicantID uuid.UUID) ([]AppliedJobRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT j.id, j.requirements, j.location, j.job_type, j.experience_level
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE a.applicant_id = $1
		 ORDER BY a.created_at ASC`,
		applicantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]AppliedJobRow, 0)
	for rows.Next() {
		var row AppliedJobRow
		if err := rows.Scan(&row.JobID, &row.Requirements, &row.Location, &row.JobType, &row.ExperienceLevel); err != nil {
			return nil, err
		}
		if row.Requirements == nil {
			row.Requirements = []string{}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) ListIDsByJob(ctx context.Context, jobID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id FROM applications WHERE job_id = $1 ORDER BY created_at DESC`, jobID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1
		 RETURNING id, job_id, applicant_id, status, created_at, updated_at`,
		id, status, time.Now().UTC(),
	)

	var a application.Application
	err := row.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, err
	}
	return a, nil
}
