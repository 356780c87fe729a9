package company

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"jobportal/internal/domain/company"
)

var ErrInternal = errors.New("internal error")

type CreateInput struct {
	Name        string
	Email       string
	Password    string
	Location    string
	Description string
}

type UpdateInput struct {
	Name        string
	Email       string
	Password    string
	Location    string
	Description string
}

type Usecase interface {
	Create(ctx context.Context, in CreateInput) (company.Company, error)
	Update(ctx context.Context, id string, in UpdateInput) (company.Company, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (company.Company, error)
	GetByEmail(ctx context.Context, email string) (company.Company, error)
	List(ctx context.Context) ([]company.Company, error)
}

type Service struct {
	companies company.Repository
}

func NewService(companies company.Repository) *Service {
	return &Service{companies: companies}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (company.Company, error) {
	email := normalizeEmail(in.Email)

	taken, err := s.companies.ExistsByEmail(ctx, email)
	if err != nil {
		return company.Company{}, err
	}
	if taken {
		return company.Company{}, company.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return company.Company{}, ErrInternal
	}

	c := company.Company{
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hash),
		Location:     in.Location,
		Description:  in.Description,
	}
	if err := s.companies.Create(ctx, &c); err != nil {
		return company.Company{}, err
	}
	return c, nil
}

// Update never touches JobIDs; only the job coordinator mutates that.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (company.Company, error) {
	existing, err := s.companies.GetByID(ctx, id)
	if err != nil {
		return company.Company{}, err
	}

	email := normalizeEmail(in.Email)
	if email != existing.Email {
		taken, err := s.companies.ExistsByEmail(ctx, email)
		if err != nil {
			return company.Company{}, err
		}
		if taken {
			return company.Company{}, company.ErrEmailTaken
		}
	}

	existing.Name = in.Name
	existing.Email = email
	existing.Location = in.Location
	existing.Description = in.Description

	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return company.Company{}, ErrInternal
		}
		existing.PasswordHash = string(hash)
	}

	if err := s.companies.Update(ctx, existing); err != nil {
		return company.Company{}, err
	}
	return s.companies.GetByID(ctx, id)
}

// Delete removes only the company document; jobs that still reference it
// become orphans reachable by id. The original portal behaves the same
// way, and job deletion refuses to touch such orphans.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.companies.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (company.Company, error) {
	return s.companies.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (company.Company, error) {
	return s.companies.GetByEmail(ctx, normalizeEmail(email))
}

func (s *Service) List(ctx context.Context) ([]company.Company, error) {
	return s.companies.List(ctx)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
