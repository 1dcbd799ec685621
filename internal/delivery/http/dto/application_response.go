package dto

import (
	"time"

	"github.com/google/uuid"

	"jobboard/internal/domain/application"
	"jobboard/internal/repository"
)

type ApplicationResponse struct {
	ID          uuid.UUID `json:"id"`
	JobID       uuid.UUID `json:"job_id"`
	ApplicantID uuid.UUID `json:"applicant_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewApplicationResponse(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          a.ID,
		JobID:       a.JobID,
		ApplicantID: a.ApplicantID,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt,
	}
}

// SeekerApplicationResponse is one entry in a seeker's application history,
// with the posting expanded.
type SeekerApplicationResponse struct {
	ApplicationResponse
	Job JobResponse `json:"job"`
}

func NewSeekerApplicationResponses(rows []repository.SeekerApplication) []SeekerApplicationResponse {
	out := make([]SeekerApplicationResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, SeekerApplicationResponse{
			ApplicationResponse: NewApplicationResponse(r.Application),
			Job:                 NewJobResponse(r.Job),
		})
	}
	return out
}

// JobApplicantResponse is what a recruiter sees per application on a posting.
type JobApplicantResponse struct {
	ApplicationResponse
	FullName    string   `json:"full_name"`
	Email       string   `json:"email"`
	PhoneNumber string   `json:"phone_number"`
	Resume      string   `json:"resume,omitempty"`
	Skills      []string `json:"skills"`
}

func NewJobApplicantResponses(rows []repository.JobApplicant) []JobApplicantResponse {
	out := make([]JobApplicantResponse, 0, len(rows))
	for _, r := range rows {
		skills := r.Skills
		if skills == nil {
			skills = []string{}
		}
		out = append(out, JobApplicantResponse{
			ApplicationResponse: NewApplicationResponse(r.Application),
			FullName:            r.FullName,
			Email:               r.Email,
			PhoneNumber:         r.PhoneNumber,
			Resume:              r.Resume,
			Skills:              skills,
		})
	}
	return out
}
