package dto

import (
	"time"

	"github.com/google/uuid"

	"jobboard/internal/domain/company"
)

type CompanyResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty"`
	Location    string    `json:"location,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewCompanyResponse(c company.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Website:     c.Website,
		Location:    c.Location,
		Logo:        c.Logo,
		OwnerID:     c.OwnerID,
		CreatedAt:   c.CreatedAt,
	}
}

func NewCompanyResponses(cs []company.Company) []CompanyResponse {
	out := make([]CompanyResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, NewCompanyResponse(c))
	}
	return out
}
