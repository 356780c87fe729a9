package handler

import (
	"github.com/gofiber/fiber/v3"

	"jobportal/internal/delivery/http/dto"
	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/pkg/response"
	"jobportal/internal/pkg/validation"
	ucadmin "jobportal/internal/usecase/admin"
)

type AdminHandler struct {
	uc       ucadmin.Usecase
	validate *validation.Validator
}

func NewAdminHandler(uc ucadmin.Usecase, validate *validation.Validator) *AdminHandler {
	return &AdminHandler{uc: uc, validate: validate}
}

func (h *AdminHandler) Create(c fiber.Ctx) error {
	var req dto.CreateAdminRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return mapDomainError(err)
	}

	created, err := h.uc.Create(c.Context(), ucadmin.CreateInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, created)
}

func (h *AdminHandler) Update(c fiber.Ctx) error {
	var req dto.UpdateAdminRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return mapDomainError(err)
	}

	updated, err := h.uc.Update(c.Context(), c.Params("id"), ucadmin.UpdateInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, updated)
}

func (h *AdminHandler) Delete(c fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *AdminHandler) GetByID(c fiber.Ctx) error {
	found, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, found)
}

func (h *AdminHandler) GetByEmail(c fiber.Ctx) error {
	found, err := h.uc.GetByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, found)
}

func (h *AdminHandler) List(c fiber.Ctx) error {
	found, err := h.uc.List(c.Context())
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, found)
}
