package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleSeeker    = "seeker"
	RoleRecruiter = "recruiter"
)

type User struct {
	ID           uuid.UUID
	FullName     string
	Email        string
	PhoneNumber  string
	PasswordHash string
	Role         string
	Profile      Profile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Profile is the seeker-facing part of a user record. Skill comparison is
// case-insensitive everywhere; insertion order carries no meaning.
type Profile struct {
	Bio                string
	Skills             []string
	Resume             string
	ResumeOriginalName string
	ProfilePhoto       string
}

func ValidRole(role string) bool {
	return role == RoleSeeker || role == RoleRecruiter
}
