package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"jobboard/internal/database"
	"jobboard/internal/domain/job"
	"jobboard/internal/search"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	Create(ctx context.Context, j job.Job) error
	GetByID(ctx context.Context, id uuid.UUID) (job.WithCompany, error)
	ListAll(ctx context.Context, keyword string) ([]job.WithCompany, error)
	ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]job.WithCompany, error)
	Search(ctx context.Context, p search.Predicate, limit, offset int) ([]job.WithCompany, error)
	CountSearch(ctx context.Context, p search.Predicate) (int, error)
	ListCandidates(ctx context.Context, q CandidateQuery) ([]job.WithCompany, error)
}

// CandidateQuery is the recommendation candidate predicate: a union of skill,
// location, job-type and experience signals, minus already-applied jobs.
// Empty legs contribute nothing to the union.
type CandidateQuery struct {
	Skills    []string
	Locations []string
	JobTypes  []string

	ExperienceLevels []int
	ExperienceLo     int
	ExperienceHi     int

	ExcludeJobIDs []uuid.UUID
	Limit         int
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobWithCompanyColumns = `j.id, j.title, j.description, j.requirements, j.salary,
	j.location, j.job_type, j.experience_level, j."position", j.company_id, j.created_by, j.created_at,
	c.id, c.name, c.description, c.website, c.location, c.logo, c.owner_id, c.created_at, c.updated_at`

const jobWithCompanyFrom = ` FROM jobs j JOIN companies c ON c.id = j.company_id`

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	reqs := j.Requirements
	if reqs == nil {
		reqs = []string{}
	}
	_, err := r.db.Exec(ctx,
		`INSERT INTO jobs (id, title, description, requirements, salary, location, job_type, experience_level, "position", company_id, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		j.ID, j.Title, j.Description, reqs, j.Salary, j.Location, j.JobType,
		j.ExperienceLevel, j.Position, j.CompanyID, j.CreatedBy,
	)
	return err
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.WithCompany, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobWithCompanyColumns+jobWithCompanyFrom+` WHERE j.id = $1`, id)
	return scanJobWithCompany(row)
}

func (r *PostgresJobRepository) ListAll(ctx context.Context, keyword string) ([]job.WithCompany, error) {
	q := `SELECT ` + jobWithCompanyColumns + jobWithCompanyFrom
	args := []any{}
	if keyword != "" {
		q += ` WHERE (j.title ILIKE $1 OR j.description ILIKE $1)`
		args = append(args, search.Contains(keyword))
	}
	q += ` ORDER BY j.created_at DESC`
	return r.queryJobs(ctx, q, args...)
}

func (r *PostgresJobRepository) ListByCreator(ctx context.Context, creatorID uuid.UUID) ([]job.WithCompany, error) {
	q := `SELECT ` + jobWithCompanyColumns + jobWithCompanyFrom + ` WHERE j.created_by = $1 ORDER BY j.created_at DESC`
	return r.queryJobs(ctx, q, creatorID)
}

func (r *PostgresJobRepository) Search(ctx context.Context, p search.Predicate, limit, offset int) ([]job.WithCompany, error) {
	n := p.NextPlaceholder()
	q := `SELECT ` + jobWithCompanyColumns + jobWithCompanyFrom + p.Where() +
		fmt.Sprintf(` ORDER BY j.created_at DESC LIMIT $%d OFFSET $%d`, n, n+1)
	args := append(append([]any{}, p.Args...), limit, offset)
	return r.queryJobs(ctx, q, args...)
}

func (r *PostgresJobRepository) CountSearch(ctx context.Context, p search.Predicate) (int, error) {
	var count int
	row := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM jobs j`+p.Where(), p.Args...)
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PostgresJobRepository) ListCandidates(ctx context.Context, q CandidateQuery) ([]job.WithCompany, error) {
	legs := make([]string, 0, 4)
	args := make([]any, 0, 8)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(q.Skills) > 0 {
		// Exact requirement/skill overlap at the query stage; scoring applies
		// the case-insensitive comparison afterwards.
		legs = append(legs, "j.requirements && "+arg(q.Skills))
	}
	if len(q.Locations) > 0 {
		legs = append(legs, "j.location = ANY("+arg(q.Locations)+")")
	}
	if len(q.JobTypes) > 0 {
		legs = append(legs, "j.job_type = ANY("+arg(q.JobTypes)+")")
	}
	if len(q.ExperienceLevels) > 0 {
		legs = append(legs, fmt.Sprintf("(j.experience_level = ANY(%s) AND j.experience_level BETWEEN %s AND %s)",
			arg(q.ExperienceLevels), arg(q.ExperienceLo), arg(q.ExperienceHi)))
	}
	if len(legs) == 0 {
		return []job.WithCompany{}, nil
	}

	where := " WHERE (" + strings.Join(legs, " OR ") + ")"
	if len(q.ExcludeJobIDs) > 0 {
		where += " AND NOT (j.id = ANY(" + arg(q.ExcludeJobIDs) + "))"
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 10
	}

	sqlq := `SELECT ` + jobWithCompanyColumns + jobWithCompanyFrom + where +
		` ORDER BY j.created_at DESC LIMIT ` + arg(limit)
	return r.queryJobs(ctx, sqlq, args...)
}

func (r *PostgresJobRepository) queryJobs(ctx context.Context, query string, args ...any) ([]job.WithCompany, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.WithCompany, 0)
	for rows.Next() {
		j, err := scanJobWithCompanyRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanJobWithCompany(row database.Row) (job.WithCompany, error) {
	j, err := scanJobDests(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return job.WithCompany{}, ErrJobNotFound
		}
		return job.WithCompany{}, err
	}
	return j, nil
}

func scanJobWithCompanyRows(rows database.Rows) (job.WithCompany, error) {
	return scanJobDests(rows.Scan)
}

func scanJobDests(scan func(dest ...any) error) (job.WithCompany, error) {
	var j job.WithCompany
	err := scan(
		&j.ID, &j.Title, &j.Description, &j.Requirements, &j.Salary,
		&j.Location, &j.JobType, &j.ExperienceLevel, &j.Position,
		&j.CompanyID, &j.CreatedBy, &j.CreatedAt,
		&j.Company.ID, &j.Company.Name, &j.Company.Description, &j.Company.Website,
		&j.Company.Location, &j.Company.Logo, &j.Company.OwnerID,
		&j.Company.CreatedAt, &j.Company.UpdatedAt,
	)
	if err != nil {
		return job.WithCompany{}, err
	}
	if j.Requirements == nil {
		j.Requirements = []string{}
	}
	return j, nil
}
