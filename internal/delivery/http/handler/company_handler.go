package handler

import (
	"github.com/gofiber/fiber/v3"

	"jobportal/internal/delivery/http/dto"
	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/pkg/response"
	"jobportal/internal/pkg/validation"
	uccompany "jobportal/internal/usecase/company"
)

type CompanyHandler struct {
	uc       uccompany.Usecase
	validate *validation.Validator
}

func NewCompanyHandler(uc uccompany.Usecase, validate *validation.Validator) *CompanyHandler {
	return &CompanyHandler{uc: uc, validate: validate}
}

func (h *CompanyHandler) Create(c fiber.Ctx) error {
	var req dto.CreateCompanyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return mapDomainError(err)
	}

	created, err := h.uc.Create(c.Context(), uccompany.CreateInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, created)
}

func (h *CompanyHandler) Update(c fiber.Ctx) error {
	var req dto.UpdateCompanyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return mapDomainError(err)
	}

	updated, err := h.uc.Update(c.Context(), c.Params("id"), uccompany.UpdateInput{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Location:    req.Location,
		Description: req.Description,
	})
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *CompanyHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *CompanyHandler) GetByID(c fiber.Ctx) error {
	found, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, found)
}

func (h *CompanyHandler) GetByEmail(c fiber.Ctx) error {
	found, err := h.uc.GetByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, found)
}

func (h *CompanyHandler) List(c fiber.Ctx) error {
	found, err := h.uc.List(c.Context())
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, found)
}
