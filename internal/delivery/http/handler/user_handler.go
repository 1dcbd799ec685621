package handler

import (
	"errors"

	"jobboard/internal/delivery/http/dto"
	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/upload"
	"jobboard/internal/usecase"
	ucuser "jobboard/internal/usecase/user"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// resumeField is the multipart field carrying a resume on profile update.
const resumeField = "resume"

type UserHandler struct {
	uc    usecase.UserUsecase
	store *upload.Store
}

type updateProfileRequest struct {
	FullName    *string `json:"full_name" form:"full_name"`
	Email       *string `json:"email" form:"email"`
	PhoneNumber *string `json:"phone_number" form:"phone_number"`
	Bio         *string `json:"bio" form:"bio"`
	Skills      *string `json:"skills" form:"skills"`
}

func NewUserHandler(uc usecase.UserUsecase, store *upload.Store) *UserHandler {
	return &UserHandler{uc: uc, store: store}
}

func (h *UserHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/me", h.GetMe)
	r.Put("/update", h.UpdateProfile)
}

func (h *UserHandler) GetMe(c fiber.Ctx) error {
	userID, ok := userIDFromLocals(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	usr, err := h.uc.GetMe(c.Context(), userID)
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewUserResponse(usr))
}

func (h *UserHandler) UpdateProfile(c fiber.Ctx) error {
	userID, ok := userIDFromLocals(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil)
	}

	var req updateProfileRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	}

	in := ucuser.UpdateProfileInput{
		FullName:    req.FullName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Bio:         req.Bio,
		Skills:      req.Skills,
	}

	if fh, err := c.FormFile(resumeField); err == nil && fh != nil {
		name, err := h.store.Save(fh, upload.KindResume)
		if err != nil {
			return mapUploadError(err)
		}
		orig := fh.Filename
		in.Resume = &name
		in.ResumeOriginalName = &orig
	}

	usr, err := h.uc.UpdateProfile(c.Context(), userID, in)
	if err != nil {
		return mapUserUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, "Profile updated successfully", dto.NewUserResponse(usr))
}

func userIDFromLocals(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func mapUserUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ucuser.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", err)
	case errors.Is(err, ucuser.ErrUnauthorized):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
}
