package handler

import (
	"errors"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/pkg/validate"
	"jobboard/internal/upload"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// logoField is the multipart field carrying a company logo on update.
const logoField = "file"

type CompanyHandler struct {
	uc    usecase.CompanyUsecase
	store *upload.Store
}

type registerCompanyRequest struct {
	Name string `json:"name" validate:"required"`
}

type updateCompanyRequest struct {
	Name        *string `json:"name" form:"name"`
	Description *string `json:"description" form:"description"`
	Website     *string `json:"website" form:"website"`
	Location    *string `json:"location" form:"location"`
}

func NewCompanyHandler(uc usecase.CompanyUsecase, store *upload.Store) *CompanyHandler {
	return &CompanyHandler{uc: uc, store: store}
}

func (h *CompanyHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/register", h.Register)
	r.Get("/get", h.GetMine)
	r.Get("/get/:id", h.GetByID)
	r.Put("/update/:id", h.Update)
}

func (h *CompanyHandler) Register(c fiber.Ctx) error {
	ownerID, ok := userIDFromLocals(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var req registerCompanyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}
	if err := validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, validate.Message(err), err)
	}

	comp, err := h.uc.RegisterCompany(c.Context(), ownerID, req.Name)
	if err != nil {
		return mapCompanyUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "Company registered successfully", dto.NewCompanyResponse(comp))
}

func (h *CompanyHandler) GetMine(c fiber.Ctx) error {
	ownerID, ok := userIDFromLocals(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	comps, err := h.uc.GetMyCompanies(c.Context(), ownerID)
	if err != nil {
		return mapCompanyUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyResponses(comps))
}

func (h *CompanyHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid company id", err)
	}

	comp, err := h.uc.GetCompanyByID(c.Context(), id)
	if err != nil {
		return mapCompanyUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewCompanyResponse(comp))
}

func (h *CompanyHandler) Update(c fiber.Ctx) error {
	ownerID, ok := userIDFromLocals(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid company id", err)
	}

	var req updateCompanyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	in := usecase.UpdateCompanyInput{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
	}

	if fh, err := c.FormFile(logoField); err == nil && fh != nil {
		name, err := h.store.Save(fh, upload.KindImage)
		if err != nil {
			return mapUploadError(err)
		}
		in.Logo = &name
	}

	comp, err := h.uc.UpdateCompany(c.Context(), ownerID, id, in)
	if err != nil {
		return mapCompanyUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Company information updated", dto.NewCompanyResponse(comp))
}

func mapCompanyUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrCompanyNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Company not found", err)
	case errors.Is(err, usecase.ErrCompanyExists):
		return middleware.NewAppError(fiber.StatusConflict, "Company already registered", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
