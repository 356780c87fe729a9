package handler

import (
	"github.com/gofiber/fiber/v3"

	"jobportal/internal/pkg/response"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
