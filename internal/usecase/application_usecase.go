package usecase

import (
	"context"
	"errors"

	"jobboard/internal/domain/application"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrAlreadyApplied      = errors.New("already applied to this job")
	ErrApplicationNotFound = errors.New("application not found")
)

type ApplicationUsecase interface {
	Apply(ctx context.Context, applicantID, jobID uuid.UUID) (application.Application, error)
	GetMyApplications(ctx context.Context, applicantID uuid.UUID) ([]repository.SeekerApplication, error)
	GetApplicants(ctx context.Context, jobID uuid.UUID) ([]repository.JobApplicant, error)
	UpdateStatus(ctx context.Context, applicationID uuid.UUID, status string) (application.Application, error)
}

type Applications struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
}

func NewApplicationUsecase(applications repository.ApplicationRepository, jobs repository.JobRepository) *Applications {
	return &Applications{applications: applications, jobs: jobs}
}

func (u *Applications) Apply(ctx context.Context, applicantID, jobID uuid.UUID) (application.Application, error) {
	if applicantID == uuid.Nil {
		return application.Application{}, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return application.Application{}, ErrInvalidInput
	}

	if _, err := u.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return application.Application{}, ErrJobNotFound
		}
		return application.Application{}, ErrInternal
	}

	app := application.Application{
		ID:          uuid.New(),
		JobID:       jobID,
		ApplicantID: applicantID,
		Status:      application.StatusPending,
	}
	if err := u.applications.Create(ctx, app); err != nil {
		if errors.Is(err, repository.ErrDuplicateApplication) {
			return application.Application{}, ErrAlreadyApplied
		}
		return application.Application{}, ErrInternal
	}
	return app, nil
}

func (u *Applications) GetMyApplications(ctx context.Context, applicantID uuid.UUID) ([]repository.SeekerApplication, error) {
	if applicantID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	rows, err := u.applications.ListByApplicant(ctx, applicantID)
	if err != nil {
		return nil, ErrInternal
	}
	return rows, nil
}

func (u *Applications) GetApplicants(ctx context.Context, jobID uuid.UUID) ([]repository.JobApplicant, error) {
	if jobID == uuid.Nil {
		return nil, ErrJobNotFound
	}
	if _, err := u.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrInternal
	}
	rows, err := u.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	return rows, nil
}

func (u *Applications) UpdateStatus(ctx context.Context, applicationID uuid.UUID, status string) (application.Application, error) {
	if applicationID == uuid.Nil {
		return application.Application{}, ErrApplicationNotFound
	}
	if !application.ValidStatus(status) {
		return application.Application{}, ErrInvalidInput
	}
	app, err := u.applications.UpdateStatus(ctx, applicationID, status)
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, ErrInternal
	}
	return app, nil
}
