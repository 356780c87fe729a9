package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"jobportal/internal/domain/admin"
	"jobportal/internal/domain/candidate"
	"jobportal/internal/domain/company"
	domidentity "jobportal/internal/domain/identity"
	"jobportal/internal/pkg/jwt"
)

var (
	// ErrInvalidRole is the one login failure surfaced distinctly: the
	// claimed role is not a role at all, so rejecting it leaks nothing
	// about any account.
	ErrInvalidRole = errors.New("invalid role")

	// ErrInvalidCredentials covers unknown email, wrong password and
	// role mismatch alike; callers must not be able to tell them apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInternal = errors.New("internal error")
)

type LoginInput struct {
	Email    string
	Password string
	Role     string
}

type LoginResult struct {
	Token   string
	Role    domidentity.Role
	Account any
}

type Usecase interface {
	Login(ctx context.Context, in LoginInput) (LoginResult, error)
}

type Service struct {
	admins     admin.Repository
	candidates candidate.Repository
	companies  company.Repository
	tokens     jwt.Service
}

func NewService(admins admin.Repository, candidates candidate.Repository, companies company.Repository, tokens jwt.Service) *Service {
	return &Service{admins: admins, candidates: candidates, companies: companies, tokens: tokens}
}

// Login authenticates the email/password pair against the collection the
// caller claims to belong to. The role is operator-asserted, not
// inferred: the same email may exist in another collection, and the
// caller has already declared which account they mean.
func (s *Service) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	role, ok := domidentity.ParseRole(in.Role)
	if !ok {
		return LoginResult{}, ErrInvalidRole
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	resolved, err := s.lookup(ctx, role, email)
	if err != nil {
		return LoginResult{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(resolved.PasswordHash()), []byte(in.Password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(email, string(role))
	if err != nil {
		return LoginResult{}, ErrInternal
	}

	return LoginResult{Token: token, Role: role, Account: resolved.Account()}, nil
}

func (s *Service) lookup(ctx context.Context, role domidentity.Role, email string) (domidentity.Resolved, error) {
	switch role {
	case domidentity.RoleAdmin:
		a, err := s.admins.GetByEmail(ctx, email)
		if errors.Is(err, admin.ErrNotFound) {
			return domidentity.Resolved{}, ErrInvalidCredentials
		}
		if err != nil {
			return domidentity.Resolved{}, ErrInternal
		}
		return domidentity.Resolved{Role: role, Admin: &a}, nil
	case domidentity.RoleCandidate:
		c, err := s.candidates.GetByEmail(ctx, email)
		if errors.Is(err, candidate.ErrNotFound) {
			return domidentity.Resolved{}, ErrInvalidCredentials
		}
		if err != nil {
			return domidentity.Resolved{}, ErrInternal
		}
		return domidentity.Resolved{Role: role, Candidate: &c}, nil
	case domidentity.RoleCompany:
		c, err := s.companies.GetByEmail(ctx, email)
		if errors.Is(err, company.ErrNotFound) {
			return domidentity.Resolved{}, ErrInvalidCredentials
		}
		if err != nil {
			return domidentity.Resolved{}, ErrInternal
		}
		return domidentity.Resolved{Role: role, Company: &c}, nil
	default:
		return domidentity.Resolved{}, ErrInvalidRole
	}
}
