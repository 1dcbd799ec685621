package usecase

import (
	"context"
	"errors"
	"testing"

	"jobboard/internal/domain/application"
	"jobboard/internal/domain/job"
	"jobboard/internal/repository"

	"github.com/google/uuid"
)

type memApplicationRepo struct {
	fakeApplicationRepo
	created   []application.Application
	createErr error
	updated   map[uuid.UUID]application.Application
}

func (m *memApplicationRepo) Create(_ context.Context, a application.Application) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, a)
	return nil
}

func (m *memApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status string) (application.Application, error) {
	a, ok := m.updated[id]
	if !ok {
		return application.Application{}, repository.ErrApplicationNotFound
	}
	a.Status = status
	return a, nil
}

func TestApply(t *testing.T) {
	jobID := uuid.New()
	jobs := &fakeJobRepo{byID: map[uuid.UUID]job.WithCompany{jobID: {}}}
	apps := &memApplicationRepo{}
	uc := NewApplicationUsecase(apps, jobs)

	applicantID := uuid.New()
	app, err := uc.Apply(context.Background(), applicantID, jobID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if app.Status != application.StatusPending {
		t.Fatalf("expected pending status, got %q", app.Status)
	}
	if app.JobID != jobID || app.ApplicantID != applicantID {
		t.Fatalf("unexpected application: %+v", app)
	}
	if len(apps.created) != 1 {
		t.Fatalf("expected one stored application")
	}
}

func TestApply_UnknownJob(t *testing.T) {
	uc := NewApplicationUsecase(&memApplicationRepo{}, &fakeJobRepo{})

	_, err := uc.Apply(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApply_Duplicate(t *testing.T) {
	jobID := uuid.New()
	jobs := &fakeJobRepo{byID: map[uuid.UUID]job.WithCompany{jobID: {}}}
	apps := &memApplicationRepo{createErr: repository.ErrDuplicateApplication}
	uc := NewApplicationUsecase(apps, jobs)

	_, err := uc.Apply(context.Background(), uuid.New(), jobID)
	if !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	id := uuid.New()
	apps := &memApplicationRepo{updated: map[uuid.UUID]application.Application{id: {ID: id, Status: application.StatusPending}}}
	uc := NewApplicationUsecase(apps, &fakeJobRepo{})

	app, err := uc.UpdateStatus(context.Background(), id, application.StatusAccepted)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if app.Status != application.StatusAccepted {
		t.Fatalf("expected accepted, got %q", app.Status)
	}
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	uc := NewApplicationUsecase(&memApplicationRepo{}, &fakeJobRepo{})

	_, err := uc.UpdateStatus(context.Background(), uuid.New(), "maybe")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUpdateStatus_NotFound(t *testing.T) {
	uc := NewApplicationUsecase(&memApplicationRepo{}, &fakeJobRepo{})

	_, err := uc.UpdateStatus(context.Background(), uuid.New(), application.StatusRejected)
	if !errors.Is(err, ErrApplicationNotFound) {
		t.Fatalf("expected ErrApplicationNotFound, got %v", err)
	}
}
