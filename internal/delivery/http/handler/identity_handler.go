package handler

import (
	"github.com/gofiber/fiber/v3"

	"jobportal/internal/pkg/response"
	ucidentity "jobportal/internal/usecase/identity"
)

type IdentityHandler struct {
	resolver *ucidentity.Resolver
}

func NewIdentityHandler(resolver *ucidentity.Resolver) *IdentityHandler {
	return &IdentityHandler{resolver: resolver}
}

// ResolveByEmail reports which account collection owns an email, without
// requiring the caller to know the account kind up front.
func (h *IdentityHandler) ResolveByEmail(c fiber.Ctx) error {
	resolved, err := h.resolver.Resolve(c.Context(), c.Params("email"))
	if err != nil {
		return mapDomainError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"role":    resolved.Role,
		"account": resolved.Account(),
	})
}
