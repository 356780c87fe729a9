package handler

import (
	"github.com/gofiber/fiber/v3"

	"jobportal/internal/delivery/http/dto"
	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/pkg/response"
	"jobportal/internal/pkg/validation"
	uccandidate "jobportal/internal/usecase/candidate"
)

type CandidateHandler struct {
	uc       uccandidate.Usecase
	validate *validation.Validator
}

func NewCandidateHandler(uc uccandidate.Usecase, validate *validation.Validator) *CandidateHandler {
	return &CandidateHandler{uc: uc, validate: validate}
}

func (h *CandidateHandler) Create(c fiber.Ctx) error {
	var req dto.CreateCandidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return mapDomainError(err)
	}

	created, err := h.uc.Create(c.Context(), uccandidate.CreateInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		ResumeLink: req.ResumeLink,
		Skills:     req.Skills,
	})
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, created)
}

func (h *CandidateHandler) Update(c fiber.Ctx) error {
	var req dto.UpdateCandidateRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return mapDomainError(err)
	}

	updated, err := h.uc.Update(c.Context(), c.Params("id"), uccandidate.UpdateInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Phone:      req.Phone,
		ResumeLink: req.ResumeLink,
		Skills:     req.Skills,
	})
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *CandidateHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *CandidateHandler) GetByID(c fiber.Ctx) error {
	found, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, found)
}

func (h *CandidateHandler) GetByEmail(c fiber.Ctx) error {
	found, err := h.uc.GetByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, found)
}

func (h *CandidateHandler) List(c fiber.Ctx) error {
	found, err := h.uc.List(c.Context())
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, found)
}

func (h *CandidateHandler) SearchBySkill(c fiber.Ctx) error {
	found, err := h.uc.ListBySkill(c.Context(), c.Params("skill"))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, found)
}
