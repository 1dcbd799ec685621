package auth

import (
	"context"
	"errors"
	"testing"

	"jobboard/internal/domain/user"

	"github.com/google/uuid"
)

type memUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[uuid.UUID]user.User{}, byEmail: map[string]user.User{}}
}

func (m *memUserRepo) Create(_ context.Context, u user.User) error {
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func (m *memUserRepo) Update(_ context.Context, u user.User) error {
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func registerInput() RegisterInput {
	return RegisterInput{
		FullName:    "Jane Doe",
		Email:       "Jane@Example.com",
		PhoneNumber: "555-0101",
		Password:    "supersecret",
		Role:        user.RoleSeeker,
	}
}

func TestRegister_NormalizesEmailAndHashesPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewService(repo)

	created, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.Email != "jane@example.com" {
		t.Fatalf("expected lowercased email, got %q", created.Email)
	}
	if created.PasswordHash != "" {
		t.Fatalf("expected sanitized password hash in response")
	}

	stored := repo.byEmail["jane@example.com"]
	if stored.PasswordHash == "" || stored.PasswordHash == "supersecret" {
		t.Fatalf("expected bcrypt hash to be stored")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewService(repo)

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	_, err := svc.Register(context.Background(), registerInput())
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegister_RejectsBadInput(t *testing.T) {
	svc := NewService(newMemUserRepo())

	short := registerInput()
	short.Password = "short"
	if _, err := svc.Register(context.Background(), short); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short password, got %v", err)
	}

	badRole := registerInput()
	badRole.Role = "admin"
	if _, err := svc.Register(context.Background(), badRole); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown role, got %v", err)
	}
}

func TestLogin(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewService(repo)
	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	u, err := svc.Login(context.Background(), LoginInput{
		Email:    "jane@example.com",
		Password: "supersecret",
		Role:     user.RoleSeeker,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if u.PasswordHash != "" {
		t.Fatalf("expected sanitized user")
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewService(repo)
	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "jane@example.com",
		Password: "wrong-password",
		Role:     user.RoleSeeker,
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_RoleMismatch(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewService(repo)
	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "jane@example.com",
		Password: "supersecret",
		Role:     user.RoleRecruiter,
	})
	if !errors.Is(err, ErrRoleMismatch) {
		t.Fatalf("expected ErrRoleMismatch, got %v", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewService(newMemUserRepo())

	_, err := svc.Login(context.Background(), LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever1",
		Role:     user.RoleSeeker,
	})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
