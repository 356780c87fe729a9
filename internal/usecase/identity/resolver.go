package identity

import (
	"context"
	"errors"
	"strings"

	"jobportal/internal/domain/admin"
	"jobportal/internal/domain/candidate"
	"jobportal/internal/domain/company"
	domidentity "jobportal/internal/domain/identity"
)

// ErrNotFound is an ordinary negative result: no account of any kind is
// registered under the email.
var ErrNotFound = errors.New("no account registered for email")

// Resolver answers "which of the three account collections owns this
// email". Emails are unique inside each collection but not across them,
// so the probe order below is fixed (admins, then candidates, then
// companies) to keep resolution deterministic even if the same email
// shows up in more than one collection.
type Resolver struct {
	admins     admin.Repository
	candidates candidate.Repository
	companies  company.Repository
}

func NewResolver(admins admin.Repository, candidates candidate.Repository, companies company.Repository) *Resolver {
	return &Resolver{admins: admins, candidates: candidates, companies: companies}
}

func (r *Resolver) Resolve(ctx context.Context, email string) (domidentity.Resolved, error) {
	email = normalizeEmail(email)
	if email == "" {
		return domidentity.Resolved{}, ErrNotFound
	}

	a, err := r.admins.GetByEmail(ctx, email)
	if err == nil {
		return domidentity.Resolved{Role: domidentity.RoleAdmin, Admin: &a}, nil
	}
	if !errors.Is(err, admin.ErrNotFound) {
		return domidentity.Resolved{}, err
	}

	cand, err := r.candidates.GetByEmail(ctx, email)
	if err == nil {
		return domidentity.Resolved{Role: domidentity.RoleCandidate, Candidate: &cand}, nil
	}
	if !errors.Is(err, candidate.ErrNotFound) {
		return domidentity.Resolved{}, err
	}

	comp, err := r.companies.GetByEmail(ctx, email)
	if err == nil {
		return domidentity.Resolved{Role: domidentity.RoleCompany, Company: &comp}, nil
	}
	if !errors.Is(err, company.ErrNotFound) {
		return domidentity.Resolved{}, err
	}

	return domidentity.Resolved{}, ErrNotFound
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
