package handler

import (
	"context"

	"jobboard/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db    Pinger
	cache Pinger
}

func NewHealthHandler(db, cache Pinger) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/health", h.Check)
}

func (h *HealthHandler) Check(c fiber.Ctx) error {
	status := map[string]string{"database": "ok", "cache": "ok"}
	healthy := true

	if h.db != nil {
		if err := h.db.Ping(c.Context()); err != nil {
			status["database"] = "down"
			healthy = false
		}
	}
	if h.cache != nil {
		if err := h.cache.Ping(c.Context()); err != nil {
			// Search falls back to the database when the cache is down, so
			// this does not fail the check.
			status["cache"] = "down"
		}
	}

	if !healthy {
		return response.Error(c, fiber.StatusServiceUnavailable, "unhealthy")
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, status)
}
