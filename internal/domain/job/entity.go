package job

import (
	"time"

	"github.com/google/uuid"

	"jobboard/internal/domain/company"
)

// Job is a posting as stored in the catalog. Requirements is never nil for a
// persisted job; salary is annual and non-negative.
type Job struct {
	ID              uuid.UUID
	Title           string
	Description     string
	Requirements    []string
	Salary          int64
	Location        string
	JobType         string
	ExperienceLevel int
	Position        int
	CompanyID       uuid.UUID
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
}

// WithCompany is a catalog row with its company reference expanded.
type WithCompany struct {
	Job
	Company company.Company
}
