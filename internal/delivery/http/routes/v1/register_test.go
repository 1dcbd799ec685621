package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"testing"
	"time"

	"jobboard/internal/delivery/http/middleware"
	v1 "jobboard/internal/delivery/http/routes/v1"
	"jobboard/internal/domain/application"
	"jobboard/internal/domain/company"
	"jobboard/internal/domain/job"
	"jobboard/internal/domain/user"
	"jobboard/internal/pkg/jwt"
	"jobboard/internal/repository"
	"jobboard/internal/search"
	"jobboard/internal/upload"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type memUsers struct {
	byID map[uuid.UUID]user.User
}

func (m *memUsers) Create(_ context.Context, u user.User) error {
	m.byID[u.ID] = u
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range m.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (m *memUsers) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(context.Background(), email)
	return err == nil, nil
}

func (m *memUsers) Update(_ context.Context, u user.User) error {
	m.byID[u.ID] = u
	return nil
}

type memJobs struct {
	rows []job.WithCompany
}

func (m *memJobs) Create(context.Context, job.Job) error { return nil }

func (m *memJobs) GetByID(_ context.Context, id uuid.UUID) (job.WithCompany, error) {
	for _, r := range m.rows {
		if r.ID == id {
			return r, nil
		}
	}
	return job.WithCompany{}, repository.ErrJobNotFound
}

func (m *memJobs) ListAll(context.Context, string) ([]job.WithCompany, error) {
	return m.rows, nil
}

func (m *memJobs) ListByCreator(context.Context, uuid.UUID) ([]job.WithCompany, error) {
	return nil, nil
}

func (m *memJobs) Search(context.Context, search.Predicate, int, int) ([]job.WithCompany, error) {
	return m.rows, nil
}

func (m *memJobs) CountSearch(context.Context, search.Predicate) (int, error) {
	return len(m.rows), nil
}

func (m *memJobs) ListCandidates(context.Context, repository.CandidateQuery) ([]job.WithCompany, error) {
	return nil, nil
}

type memCompanies struct{}

func (memCompanies) Create(context.Context, company.Company) error { return nil }
func (memCompanies) GetByID(context.Context, uuid.UUID) (company.Company, error) {
	return company.Company{}, repository.ErrCompanyNotFound
}
func (memCompanies) ListByOwner(context.Context, uuid.UUID) ([]company.Company, error) {
	return nil, nil
}
func (memCompanies) ExistsByOwnerAndName(context.Context, uuid.UUID, string) (bool, error) {
	return false, nil
}
func (memCompanies) Update(context.Context, company.Company) error { return nil }

type memApplications struct{}

func (memApplications) Create(context.Context, application.Application) error { return nil }
func (memApplications) ListByApplicant(context.Context, uuid.UUID) ([]repository.SeekerApplication, error) {
	return nil, nil
}
func (memApplications) ListByJob(context.Context, uuid.UUID) ([]repository.JobApplicant, error) {
	return nil, nil
}
func (memApplications) ListAppliedJobs(context.Context, uuid.UUID) ([]repository.AppliedJobRow, error) {
	return nil, nil
}
func (memApplications) ListIDsByJob(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return nil, nil
}
func (memApplications) UpdateStatus(context.Context, uuid.UUID, string) (application.Application, error) {
	return application.Application{}, repository.ErrApplicationNotFound
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T, jobs *memJobs) *fiber.App {
	t.Helper()

	store, err := upload.NewStore(t.TempDir(), 5*1024*1024)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	logger := log.New(io.Discard, "", 0)
	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())

	deps := v1.Deps{
		JWT:            jwt.NewHMACService("test-access-secret", "test-refresh-secret", time.Hour, 24*time.Hour),
		Users:          &memUsers{byID: map[uuid.UUID]user.User{}},
		Companies:      memCompanies{},
		Jobs:           jobs,
		Applications:   memApplications{},
		Cache:          nil,
		Store:          store,
		Logger:         logger,
		AccessTokenTTL: time.Hour,
	}
	v1.Register(app.Group("/api").Group("/v1"), deps)
	return app
}

func registerSeeker(t *testing.T, app *fiber.App) string {
	t.Helper()

	body, _ := json.Marshal(map[string]string{
		"full_name":    "Jane Doe",
		"email":        "jane@example.com",
		"phone_number": "123456789",
		"password":     "longenoughpassword",
		"role":         "seeker",
	})
	req := httptest.NewRequest("POST", "/api/v1/user/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("register request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("register status = %d, want 201", resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode register response: %v", err)
	}
	if !env.Success {
		t.Fatalf("register success = false, message %q", env.Message)
	}

	var data struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode register data: %v", err)
	}
	if data.AccessToken == "" {
		t.Fatalf("register returned empty access_token")
	}
	return data.AccessToken
}

func TestJobRoutesRequireAuthentication(t *testing.T) {
	app := newTestApp(t, &memJobs{})

	req := httptest.NewRequest("GET", "/api/v1/job/get", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestGetJobsEnvelope(t *testing.T) {
	app := newTestApp(t, &memJobs{})
	tok := registerSeeker(t, app)

	req := httptest.NewRequest("GET", "/api/v1/job/get", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Success bool              `json:"success"`
		Jobs    []json.RawMessage `json:"jobs"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success {
		t.Fatalf("success = false")
	}
	if len(body.Jobs) != 0 {
		t.Fatalf("jobs = %d entries, want 0", len(body.Jobs))
	}
}

func TestSearchJobsEnvelope(t *testing.T) {
	jobs := &memJobs{rows: []job.WithCompany{
		{
			Job: job.Job{
				ID:           uuid.New(),
				Title:        "Go Developer",
				Description:  "Backend work",
				Requirements: []string{"Go"},
				Location:     "Remote",
				JobType:      "full-time",
				Position:     1,
			},
			Company: company.Company{ID: uuid.New(), Name: "GoWorks"},
		},
	}}
	app := newTestApp(t, jobs)
	tok := registerSeeker(t, app)

	req := httptest.NewRequest("GET", "/api/v1/job/search?query=go&page=1&limit=10", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var body struct {
		Success    bool              `json:"success"`
		Jobs       []json.RawMessage `json:"jobs"`
		Page       int               `json:"page"`
		TotalPages int               `json:"totalPages"`
		Total      int               `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !body.Success || body.Page != 1 || body.Total != 1 || body.TotalPages != 1 {
		t.Fatalf("unexpected envelope: %+v", body)
	}
	if len(body.Jobs) != 1 {
		t.Fatalf("jobs = %d entries, want 1", len(body.Jobs))
	}
}

func TestPostJobRejectsSeeker(t *testing.T) {
	app := newTestApp(t, &memJobs{})
	tok := registerSeeker(t, app)

	body, _ := json.Marshal(map[string]any{
		"title":        "Go Developer",
		"description":  "Backend work",
		"requirements": "Go,SQL",
		"salary":       100000,
		"location":     "Remote",
		"job_type":     "full-time",
		"position":     1,
		"company_id":   uuid.NewString(),
	})
	req := httptest.NewRequest("POST", "/api/v1/job/post", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+tok)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}
