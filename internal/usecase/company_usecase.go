package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"jobboard/internal/domain/company"
	"jobboard/internal/repository"
	ucuser "jobboard/internal/usecase/user"

	"github.com/google/uuid"
)

var (
	ErrCompanyNotFound = errors.New("company not found")
	ErrCompanyExists   = errors.New("company already registered")
)

type UpdateCompanyInput struct {
	Name        *string
	Description *string
	Website     *string
	Location    *string
	Logo        *string
}

type CompanyUsecase interface {
	RegisterCompany(ctx context.Context, ownerID uuid.UUID, name string) (company.Company, error)
	GetMyCompanies(ctx context.Context, ownerID uuid.UUID) ([]company.Company, error)
	GetCompanyByID(ctx context.Context, id uuid.UUID) (company.Company, error)
	UpdateCompany(ctx context.Context, ownerID, id uuid.UUID, in UpdateCompanyInput) (company.Company, error)
}

type Companies struct {
	companies repository.CompanyRepository
	files     ucuser.FileRemover
	logger    *log.Logger
}

func NewCompanyUsecase(companies repository.CompanyRepository, files ucuser.FileRemover, logger *log.Logger) *Companies {
	if logger == nil {
		logger = log.Default()
	}
	return &Companies{companies: companies, files: files, logger: logger}
}

func (u *Companies) RegisterCompany(ctx context.Context, ownerID uuid.UUID, name string) (company.Company, error) {
	if ownerID == uuid.Nil {
		return company.Company{}, ErrUnauthorized
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return company.Company{}, ErrInvalidInput
	}

	exists, err := u.companies.ExistsByOwnerAndName(ctx, ownerID, name)
	if err != nil {
		return company.Company{}, ErrInternal
	}
	if exists {
		return company.Company{}, ErrCompanyExists
	}

	c := company.Company{
		ID:      uuid.New(),
		Name:    name,
		OwnerID: ownerID,
	}
	if err := u.companies.Create(ctx, c); err != nil {
		return company.Company{}, ErrInternal
	}
	created, err := u.companies.GetByID(ctx, c.ID)
	if err != nil {
		return company.Company{}, ErrInternal
	}
	return created, nil
}

func (u *Companies) GetMyCompanies(ctx context.Context, ownerID uuid.UUID) ([]company.Company, error) {
	if ownerID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	rows, err := u.companies.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, ErrInternal
	}
	return rows, nil
}

func (u *Companies) GetCompanyByID(ctx context.Context, id uuid.UUID) (company.Company, error) {
	if id == uuid.Nil {
		return company.Company{}, ErrCompanyNotFound
	}
	c, err := u.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return company.Company{}, ErrCompanyNotFound
		}
		return company.Company{}, ErrInternal
	}
	return c, nil
}

func (u *Companies) UpdateCompany(ctx context.Context, ownerID, id uuid.UUID, in UpdateCompanyInput) (company.Company, error) {
	if ownerID == uuid.Nil {
		return company.Company{}, ErrUnauthorized
	}
	c, err := u.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return company.Company{}, ErrCompanyNotFound
		}
		return company.Company{}, ErrInternal
	}
	if c.OwnerID != ownerID {
		return company.Company{}, ErrUnauthorized
	}

	if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
		c.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Website != nil {
		c.Website = *in.Website
	}
	if in.Location != nil {
		c.Location = *in.Location
	}
	if in.Logo != nil && *in.Logo != "" {
		if c.Logo != "" && c.Logo != *in.Logo && u.files != nil {
			if err := u.files.Remove(c.Logo); err != nil {
				u.logger.Printf("[Companies] failed to remove old logo %q: %v", c.Logo, err)
			}
		}
		c.Logo = *in.Logo
	}

	if err := u.companies.Update(ctx, c); err != nil {
		return company.Company{}, ErrInternal
	}
	updated, err := u.companies.GetByID(ctx, id)
	if err != nil {
		return company.Company{}, ErrInternal
	}
	return updated, nil
}
