package dto

import (
	"time"

	"github.com/google/uuid"

	"jobboard/internal/domain/job"
	"jobboard/internal/usecase"
)

type JobResponse struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Requirements    []string        `json:"requirements"`
	Salary          int64           `json:"salary"`
	Location        string          `json:"location"`
	JobType         string          `json:"job_type"`
	ExperienceLevel int             `json:"experience_level"`
	Position        int             `json:"position"`
	Company         CompanyResponse `json:"company"`
	CreatedBy       uuid.UUID       `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
}

func NewJobResponse(j job.WithCompany) JobResponse {
	reqs := j.Requirements
	if reqs == nil {
		reqs = []string{}
	}
	return JobResponse{
		ID:              j.ID,
		Title:           j.Title,
		Description:     j.Description,
		Requirements:    reqs,
		Salary:          j.Salary,
		Location:        j.Location,
		JobType:         j.JobType,
		ExperienceLevel: j.ExperienceLevel,
		Position:        j.Position,
		Company:         NewCompanyResponse(j.Company),
		CreatedBy:       j.CreatedBy,
		CreatedAt:       j.CreatedAt,
	}
}

func NewJobResponses(js []job.WithCompany) []JobResponse {
	out := make([]JobResponse, 0, len(js))
	for _, j := range js {
		out = append(out, NewJobResponse(j))
	}
	return out
}

// JobDetailResponse adds the identifiers of applications already filed
// against the posting.
type JobDetailResponse struct {
	JobResponse
	Applications []uuid.UUID `json:"applications"`
}

func NewJobDetailResponse(d usecase.JobDetail) JobDetailResponse {
	apps := d.ApplicationIDs
	if apps == nil {
		apps = []uuid.UUID{}
	}
	return JobDetailResponse{JobResponse: NewJobResponse(d.WithCompany), Applications: apps}
}

// SearchJobsResponse is the documented search payload. Total counts matches
// of the structured filters before the company-name pass, so it can exceed
// the number of jobs returned.
type SearchJobsResponse struct {
	Success    bool          `json:"success"`
	Jobs       []JobResponse `json:"jobs"`
	Page       int           `json:"page"`
	TotalPages int           `json:"totalPages"`
	Total      int           `json:"total"`
}

func NewSearchJobsResponse(res usecase.SearchResult) SearchJobsResponse {
	return SearchJobsResponse{
		Success:    true,
		Jobs:       NewJobResponses(res.Jobs),
		Page:       res.Page,
		TotalPages: res.TotalPages,
		Total:      res.Total,
	}
}

// ScoredJobResponse is a recommendation entry with its relevance score,
// rounded to one decimal.
type ScoredJobResponse struct {
	JobResponse
	RelevanceScore float64 `json:"relevanceScore"`
}

func NewScoredJobResponses(js []usecase.ScoredJob) []ScoredJobResponse {
	out := make([]ScoredJobResponse, 0, len(js))
	for _, j := range js {
		out = append(out, ScoredJobResponse{JobResponse: NewJobResponse(j.WithCompany), RelevanceScore: j.RelevanceScore})
	}
	return out
}
