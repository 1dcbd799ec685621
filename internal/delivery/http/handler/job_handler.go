package handler

import (
	"errors"
	"strconv"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/pkg/validate"
	"jobboard/internal/search"
	"jobboard/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type JobHandler struct {
	uc       usecase.JobUsecase
	searchUC usecase.JobSearchUsecase
}

type postJobRequest struct {
	Title           string `json:"title" validate:"required"`
	Description     string `json:"description" validate:"required"`
	Requirements    string `json:"requirements" validate:"required"`
	Salary          int64  `json:"salary" validate:"min=0"`
	Location        string `json:"location" validate:"required"`
	JobType         string `json:"job_type" validate:"required"`
	ExperienceLevel int    `json:"experience_level" validate:"min=0"`
	Position        int    `json:"position" validate:"required,min=1"`
	CompanyID       string `json:"company_id" validate:"required,uuid"`
}

func NewJobHandler(uc usecase.JobUsecase, searchUC usecase.JobSearchUsecase) *JobHandler {
	return &JobHandler{uc: uc, searchUC: searchUC}
}

func (h *JobHandler) Post(c fiber.Ctx) error {
	creatorID, ok := userIDFromLocals(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var req postJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}
	if err := validate.Struct(req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, validate.Message(err), err)
	}

	companyID, err := uuid.Parse(req.CompanyID)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid company id", err)
	}

	j, err := h.uc.PostJob(c.Context(), creatorID, usecase.PostJobInput{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Salary:          req.Salary,
		Location:        req.Location,
		JobType:         req.JobType,
		ExperienceLevel: req.ExperienceLevel,
		Position:        req.Position,
		CompanyID:       companyID,
	})
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, "New job created successfully", dto.NewJobResponse(j))
}

func (h *JobHandler) GetAll(c fiber.Ctx) error {
	jobs, err := h.uc.GetAllJobs(c.Context(), c.Query("keyword"))
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"jobs":    dto.NewJobResponses(jobs),
	})
}

func (h *JobHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid job id", err)
	}

	detail, err := h.uc.GetJobByID(c.Context(), id)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewJobDetailResponse(detail))
}

func (h *JobHandler) GetAdminJobs(c fiber.Ctx) error {
	creatorID, ok := userIDFromLocals(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	jobs, err := h.uc.GetAdminJobs(c.Context(), creatorID)
	if err != nil {
		return mapJobUsecaseError(err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"jobs":    dto.NewJobResponses(jobs),
	})
}

func (h *JobHandler) Search(c fiber.Ctx) error {
	f, err := searchFilterFromQuery(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	res, err := h.searchUC.SearchJobs(c.Context(), f)
	if err != nil {
		return mapJobSearchUsecaseError(err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.NewSearchJobsResponse(res))
}

func searchFilterFromQuery(c fiber.Ctx) (search.Filter, error) {
	keyword := c.Query("query")
	if keyword == "" {
		keyword = c.Query("keyword")
	}

	f := search.Filter{
		Keyword:  keyword,
		Location: c.Query("location"),
		JobType:  c.Query("jobType"),
		Skills:   search.SplitSkills(c.Query("skills")),
	}

	var err error
	if f.Page, err = parseQueryIntStrict(c, "page", 0); err != nil {
		return search.Filter{}, err
	}
	if f.Limit, err = parseQueryIntStrict(c, "limit", 0); err != nil {
		return search.Filter{}, err
	}

	if s := c.Query("experience"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return search.Filter{}, err
		}
		f.ExperienceLevel = &v
	}
	if s := c.Query("minSalary"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return search.Filter{}, err
		}
		f.MinSalary = &v
	}
	if s := c.Query("maxSalary"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return search.Filter{}, err
		}
		f.MaxSalary = &v
	}

	return f, nil
}

func parseQueryIntStrict(c fiber.Ctx, key string, defaultVal int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return defaultVal, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	return v, nil
}

func mapJobUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	case errors.Is(err, usecase.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}

func mapJobSearchUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
