package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/domain/admin"
	"jobportal/internal/domain/application"
	"jobportal/internal/domain/candidate"
	"jobportal/internal/domain/company"
	"jobportal/internal/pkg/response"
	"jobportal/internal/pkg/validation"
	ucauth "jobportal/internal/usecase/auth"
	ucidentity "jobportal/internal/usecase/identity"
	ucjob "jobportal/internal/usecase/job"

	"jobportal/internal/domain/job"
)

// mapDomainError translates usecase and domain errors into the HTTP
// error envelope. Handlers call it for anything they don't map
// themselves.
func mapDomainError(err error) error {
	if err == nil {
		return nil
	}

	var verr *validation.Error
	if errors.As(err, &verr) {
		return middleware.NewAppError(fiber.StatusBadRequest, "Validation failed", verr.Fields, err)
	}

	switch {
	case errors.Is(err, ucauth.ErrInvalidRole):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid role", nil, err)
	case errors.Is(err, ucauth.ErrInvalidCredentials):
		return middleware.NewAppError(fiber.StatusUnauthorized, "Invalid credentials", nil, err)
	case errors.Is(err, ucjob.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, admin.ErrNotFound),
		errors.Is(err, candidate.ErrNotFound),
		errors.Is(err, company.ErrNotFound),
		errors.Is(err, job.ErrNotFound),
		errors.Is(err, application.ErrNotFound),
		errors.Is(err, ucidentity.ErrNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, err.Error(), nil, err)
	case errors.Is(err, admin.ErrEmailTaken),
		errors.Is(err, candidate.ErrEmailTaken),
		errors.Is(err, company.ErrEmailTaken):
		return middleware.NewAppError(fiber.StatusConflict, err.Error(), nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
