package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"jobportal/internal/delivery/http/dto"
	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/pkg/response"
	"jobportal/internal/pkg/validation"
	ucapplication "jobportal/internal/usecase/application"
)

type ApplicationHandler struct {
	uc       ucapplication.Usecase
	validate *validation.Validator
}

func NewApplicationHandler(uc ucapplication.Usecase, validate *validation.Validator) *ApplicationHandler {
	return &ApplicationHandler{uc: uc, validate: validate}
}

func (h *ApplicationHandler) Create(c fiber.Ctx) error {
	var req dto.CreateApplicationRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return mapDomainError(err)
	}

	created, err := h.uc.Create(c.Context(), ucapplication.CreateInput{
		CandidateID:   req.CandidateID,
		JobID:         req.JobID,
		Qualification: req.Qualification,
		ResumeLink:    req.ResumeLink,
		Status:        req.Status,
	})
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, created)
}

// UpdateStatus takes the new status as a query parameter, mirroring the
// portal's original API shape.
func (h *ApplicationHandler) UpdateStatus(c fiber.Ctx) error {
	status := strings.TrimSpace(c.Query("status"))
	if status == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed",
			map[string]string{"status": "is required"}, nil)
	}

	updated, err := h.uc.UpdateStatus(c.Context(), c.Params("id"), status)
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *ApplicationHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ApplicationHandler) GetByID(c fiber.Ctx) error {
	found, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, found)
}

func (h *ApplicationHandler) List(c fiber.Ctx) error {
	found, err := h.uc.List(c.Context())
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, found)
}

func (h *ApplicationHandler) ListByCandidate(c fiber.Ctx) error {
	found, err := h.uc.ListByCandidate(c.Context(), c.Params("candidateId"))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, found)
}

func (h *ApplicationHandler) ListByJob(c fiber.Ctx) error {
	found, err := h.uc.ListByJob(c.Context(), c.Params("jobId"))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, found)
}

func (h *ApplicationHandler) ListByStatus(c fiber.Ctx) error {
	found, err := h.uc.ListByStatus(c.Context(), c.Params("status"))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, found)
}
