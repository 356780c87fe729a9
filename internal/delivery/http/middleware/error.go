package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v3"

	"jobportal/internal/pkg/response"
)

type AppError struct {
	StatusCode int
	Message    string
	Data       interface{}
	Cause      error
}

func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func NewAppError(statusCode int, message string, data interface{}, cause error) *AppError {
	return &AppError{StatusCode: statusCode, Message: message, Data: data, Cause: cause}
}

type ErrorMiddleware struct {
	logger *log.Logger
}

func NewErrorMiddleware(logger *log.Logger) *ErrorMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &ErrorMiddleware{logger: logger}
}

// Middleware converts errors bubbling out of handlers into the semantic
// response envelope. Anything that is not an AppError (or is a 5xx) is
// reported to the client as a bare internal error.
func (m *ErrorMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				m.logger.Printf("panic recovered: %v", r)
				err = response.Error(c, fiber.StatusInternalServerError, response.MessageInternalServerError, nil)
			}
		}()

		err = c.Next()
		if err == nil {
			return nil
		}

		status, msg, data := m.normalize(err)
		return response.Error(c, status, msg, data)
	}
}

func (m *ErrorMiddleware) normalize(err error) (int, string, interface{}) {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.StatusCode > 0 && appErr.StatusCode < 500 {
		msg := appErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(appErr.StatusCode)
		}
		return appErr.StatusCode, msg, appErr.Data
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && fiberErr.Code > 0 && fiberErr.Code < 500 {
		msg := fiberErr.Message
		if msg == "" {
			msg = response.DefaultMessageForStatus(fiberErr.Code)
		}
		return fiberErr.Code, msg, nil
	}

	m.logger.Printf("request failed: %v", err)
	return fiber.StatusInternalServerError, response.MessageInternalServerError, nil
}
