package handler

import (
	"errors"

	"jobboard/internal/delivery/http/middleware"
	"jobboard/internal/pkg/response"
	"jobboard/internal/upload"

	"github.com/gofiber/fiber/v3"
)

// FileHandler serves stored uploads by their generated name. Resolution is
// confined to the upload directory, so traversal attempts 404.
type FileHandler struct {
	store *upload.Store
}

func NewFileHandler(store *upload.Store) *FileHandler {
	return &FileHandler{store: store}
}

func (h *FileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/:name", h.Serve)
}

func (h *FileHandler) Serve(c fiber.Ctx) error {
	name := c.Params("name")

	path, err := h.store.Resolve(name)
	if err != nil {
		if errors.Is(err, upload.ErrOutsideDir) {
			return middleware.NewAppError(fiber.StatusNotFound, "File not found", err)
		}
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, err)
	}
	if !h.store.Exists(name) {
		return middleware.NewAppError(fiber.StatusNotFound, "File not found", nil)
	}

	if ct := upload.ContentType(name); ct != "" {
		c.Set(fiber.HeaderContentType, ct)
	}
	return c.SendFile(path)
}
