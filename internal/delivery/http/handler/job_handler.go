package handler

import (
	"github.com/gofiber/fiber/v3"

	"jobportal/internal/delivery/http/dto"
	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/pkg/response"
	"jobportal/internal/pkg/validation"
	ucjob "jobportal/internal/usecase/job"
)

type JobHandler struct {
	uc       ucjob.Usecase
	validate *validation.Validator
}

func NewJobHandler(uc ucjob.Usecase, validate *validation.Validator) *JobHandler {
	return &JobHandler{uc: uc, validate: validate}
}

func (h *JobHandler) Create(c fiber.Ctx) error {
	var req dto.CreateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return mapDomainError(err)
	}

	created, err := h.uc.Create(c.Context(), ucjob.CreateInput{
		CompanyID:   req.CompanyID,
		Position:    req.Position,
		Location:    req.Location,
		Experience:  req.Experience,
		Description: req.Description,
		Skills:      req.Skills,
		JobType:     req.JobType,
	})
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, created)
}

func (h *JobHandler) Update(c fiber.Ctx) error {
	var req dto.UpdateJobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return mapDomainError(err)
	}

	updated, err := h.uc.Update(c.Context(), c.Params("id"), ucjob.UpdateInput{
		CompanyID:   req.CompanyID,
		Position:    req.Position,
		Location:    req.Location,
		Experience:  req.Experience,
		Description: req.Description,
		Skills:      req.Skills,
		JobType:     req.JobType,
	})
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *JobHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *JobHandler) GetByID(c fiber.Ctx) error {
	found, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, found)
}

func (h *JobHandler) List(c fiber.Ctx) error {
	found, err := h.uc.List(c.Context())
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, found)
}

func (h *JobHandler) ListByCompany(c fiber.Ctx) error {
	found, err := h.uc.ListByCompany(c.Context(), c.Params("companyId"))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, found)
}

func (h *JobHandler) SearchByPosition(c fiber.Ctx) error {
	found, err := h.uc.SearchByPosition(c.Context(), c.Params("position"))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, found)
}

func (h *JobHandler) SearchByLocation(c fiber.Ctx) error {
	found, err := h.uc.SearchByLocation(c.Context(), c.Params("location"))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, found)
}

func (h *JobHandler) SearchBySkill(c fiber.Ctx) error {
	found, err := h.uc.SearchBySkill(c.Context(), c.Params("skill"))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, found)
}

// ReconcileCompany rebuilds one company's job directory from the jobs
// collection; exposed for operators to repair drift.
func (h *JobHandler) ReconcileCompany(c fiber.Ctx) error {
	if err := h.uc.ReconcileCompanyJobs(c.Context(), c.Params("companyId")); err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
