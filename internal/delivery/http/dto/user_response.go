package dto

import (
	"time"

	"github.com/google/uuid"

	"jobboard/internal/domain/user"
)

type ProfileResponse struct {
	Bio                string   `json:"bio"`
	Skills             []string `json:"skills"`
	Resume             string   `json:"resume,omitempty"`
	ResumeOriginalName string   `json:"resume_original_name,omitempty"`
	ProfilePhoto       string   `json:"profile_photo,omitempty"`
}

type UserResponse struct {
	ID          uuid.UUID       `json:"id"`
	FullName    string          `json:"full_name"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phone_number"`
	Role        string          `json:"role"`
	Profile     ProfileResponse `json:"profile"`
	CreatedAt   time.Time       `json:"created_at"`
}

func NewUserResponse(u user.User) UserResponse {
	skills := u.Profile.Skills
	if skills == nil {
		skills = []string{}
	}
	return UserResponse{
		ID:          u.ID,
		FullName:    u.FullName,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Role:        u.Role,
		Profile: ProfileResponse{
			Bio:                u.Profile.Bio,
			Skills:             skills,
			Resume:             u.Profile.Resume,
			ResumeOriginalName: u.Profile.ResumeOriginalName,
			ProfilePhoto:       u.Profile.ProfilePhoto,
		},
		CreatedAt: u.CreatedAt,
	}
}
