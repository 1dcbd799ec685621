package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"jobboard/internal/domain/job"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

var ErrJobNotFound = errors.New("job not found")

type PostJobInput struct {
	Title           string
	Description     string
	Requirements    string // comma-separated, split and trimmed here
	Salary          int64
	Location        string
	JobType         string
	ExperienceLevel int
	Position        int
	CompanyID       uuid.UUID
}

// JobDetail is a posting with its application references, as returned by the
// job detail endpoint.
type JobDetail struct {
	job.WithCompany
	ApplicationIDs []uuid.UUID `json:"applications"`
}

type JobUsecase interface {
	PostJob(ctx context.Context, creatorID uuid.UUID, in PostJobInput) (job.WithCompany, error)
	GetAllJobs(ctx context.Context, keyword string) ([]job.WithCompany, error)
	GetJobByID(ctx context.Context, id uuid.UUID) (JobDetail, error)
	GetAdminJobs(ctx context.Context, creatorID uuid.UUID) ([]job.WithCompany, error)
}

type Jobs struct {
	jobs         repository.JobRepository
	companies    repository.CompanyRepository
	applications repository.ApplicationRepository
	invalidator  SearchInvalidator
	logger       *log.Logger
}

func NewJobUsecase(jobs repository.JobRepository, companies repository.CompanyRepository, applications repository.ApplicationRepository, invalidator SearchInvalidator, logger *log.Logger) *Jobs {
	return &Jobs{jobs: jobs, companies: companies, applications: applications, invalidator: invalidator, logger: logger}
}

func (u *Jobs) PostJob(ctx context.Context, creatorID uuid.UUID, in PostJobInput) (job.WithCompany, error) {
	if creatorID == uuid.Nil {
		return job.WithCompany{}, ErrUnauthorized
	}
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.Requirements) == "" ||
		strings.TrimSpace(in.Location) == "" ||
		strings.TrimSpace(in.JobType) == "" ||
		in.Salary < 0 || in.Position < 1 || in.CompanyID == uuid.Nil {
		return job.WithCompany{}, ErrInvalidInput
	}

	comp, err := u.companies.GetByID(ctx, in.CompanyID)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return job.WithCompany{}, ErrInvalidInput
		}
		return job.WithCompany{}, ErrInternal
	}

	reqs := splitRequirements(in.Requirements)

	j := job.Job{
		ID:              uuid.New(),
		Title:           strings.TrimSpace(in.Title),
		Description:     in.Description,
		Requirements:    reqs,
		Salary:          in.Salary,
		Location:        in.Location,
		JobType:         in.JobType,
		ExperienceLevel: in.ExperienceLevel,
		Position:        in.Position,
		CompanyID:       comp.ID,
		CreatedBy:       creatorID,
	}
	if err := u.jobs.Create(ctx, j); err != nil {
		return job.WithCompany{}, ErrInternal
	}

	if u.invalidator != nil {
		if err := u.invalidator.InvalidateJobSearch(ctx); err != nil && u.logger != nil {
			u.logger.Printf("[Jobs] search cache invalidation failed: %v", err)
		}
	}

	created, err := u.jobs.GetByID(ctx, j.ID)
	if err != nil {
		return job.WithCompany{}, ErrInternal
	}
	return created, nil
}

func (u *Jobs) GetAllJobs(ctx context.Context, keyword string) ([]job.WithCompany, error) {
	rows, err := u.jobs.ListAll(ctx, strings.TrimSpace(keyword))
	if err != nil {
		return nil, ErrInternal
	}
	return rows, nil
}

func (u *Jobs) GetJobByID(ctx context.Context, id uuid.UUID) (JobDetail, error) {
	if id == uuid.Nil {
		return JobDetail{}, ErrJobNotFound
	}
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return JobDetail{}, ErrJobNotFound
		}
		return JobDetail{}, ErrInternal
	}
	appIDs, err := u.applications.ListIDsByJob(ctx, id)
	if err != nil {
		return JobDetail{}, ErrInternal
	}
	return JobDetail{WithCompany: j, ApplicationIDs: appIDs}, nil
}

func (u *Jobs) GetAdminJobs(ctx context.Context, creatorID uuid.UUID) ([]job.WithCompany, error) {
	if creatorID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	rows, err := u.jobs.ListByCreator(ctx, creatorID)
	if err != nil {
		return nil, ErrInternal
	}
	return rows, nil
}

func splitRequirements(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
