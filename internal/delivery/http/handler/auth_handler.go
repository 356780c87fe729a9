package handler

import (
	"github.com/gofiber/fiber/v3"

	"jobportal/internal/delivery/http/dto"
	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/pkg/response"
	"jobportal/internal/pkg/validation"
	ucauth "jobportal/internal/usecase/auth"
)

type AuthHandler struct {
	uc       ucauth.Usecase
	validate *validation.Validator
}

func NewAuthHandler(uc ucauth.Usecase, validate *validation.Validator) *AuthHandler {
	return &AuthHandler{uc: uc, validate: validate}
}

func (h *AuthHandler) RegisterRoutes(r fiber.Router) {
	r.Post("/login", h.Login)
}

func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if err := h.validate.Struct(req); err != nil {
		return mapDomainError(err)
	}

	res, err := h.uc.Login(c.Context(), ucauth.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return mapDomainError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.LoginResponse{
		Token: res.Token,
		Role:  string(res.Role),
		User:  res.Account,
	})
}
