package user

import (
	"context"
	"errors"
	"log"
	"strings"

	"jobboard/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInternal     = errors.New("internal error")
)

// FileRemover deletes a previously stored upload. Replacing a resume removes
// the old file so the upload directory does not accumulate orphans.
type FileRemover interface {
	Remove(name string) error
}

type UpdateProfileInput struct {
	FullName    *string
	Email       *string
	PhoneNumber *string
	Bio         *string
	Skills      *string // comma-separated

	// Set by the handler after a successful upload.
	Resume             *string
	ResumeOriginalName *string
	ProfilePhoto       *string
}

type Service struct {
	users  user.Repository
	files  FileRemover
	logger *log.Logger
}

func NewService(users user.Repository, files FileRemover, logger *log.Logger) *Service {
	return &Service{users: users, files: files, logger: logger}
}

func (s *Service) GetMe(ctx context.Context, userID uuid.UUID) (user.User, error) {
	if userID == uuid.Nil {
		return user.User{}, ErrUnauthorized
	}
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(usr), nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error) {
	if userID == uuid.Nil {
		return user.User{}, ErrUnauthorized
	}
	usr, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, ErrInternal
	}

	if in.FullName != nil && strings.TrimSpace(*in.FullName) != "" {
		usr.FullName = strings.TrimSpace(*in.FullName)
	}
	if in.Email != nil {
		email := normalizeEmail(*in.Email)
		if email == "" {
			return user.User{}, ErrInvalidInput
		}
		usr.Email = email
	}
	if in.PhoneNumber != nil && strings.TrimSpace(*in.PhoneNumber) != "" {
		usr.PhoneNumber = strings.TrimSpace(*in.PhoneNumber)
	}
	if in.Bio != nil {
		usr.Profile.Bio = *in.Bio
	}
	if in.Skills != nil {
		usr.Profile.Skills = splitSkills(*in.Skills)
	}
	if in.ProfilePhoto != nil && *in.ProfilePhoto != "" {
		usr.Profile.ProfilePhoto = *in.ProfilePhoto
	}
	if in.Resume != nil && *in.Resume != "" {
		if old := usr.Profile.Resume; old != "" && old != *in.Resume && s.files != nil {
			if err := s.files.Remove(old); err != nil && s.logger != nil {
				s.logger.Printf("[Users] failed to remove old resume %q: %v", old, err)
			}
		}
		usr.Profile.Resume = *in.Resume
		if in.ResumeOriginalName != nil {
			usr.Profile.ResumeOriginalName = *in.ResumeOriginalName
		}
	}

	if err := s.users.Update(ctx, usr); err != nil {
		return user.User{}, ErrInternal
	}

	updated, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, ErrInternal
	}
	return sanitizeUser(updated), nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}
	return strings.ToLower(email)
}

func splitSkills(raw string) []string {
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

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
