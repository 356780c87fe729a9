package admin

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"jobportal/internal/domain/admin"
)

var ErrInternal = errors.New("internal error")

type CreateInput struct {
	Email    string
	Password string
}

type UpdateInput struct {
	Email    string
	Password string
}

type Usecase interface {
	Create(ctx context.Context, in CreateInput) (admin.Admin, error)
	Update(ctx context.Context, id string, in UpdateInput) (admin.Admin, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (admin.Admin, error)
	GetByEmail(ctx context.Context, email string) (admin.Admin, error)
	List(ctx context.Context) ([]admin.Admin, error)
}

type Service struct {
	admins admin.Repository
}

func NewService(admins admin.Repository) *Service {
	return &Service{admins: admins}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (admin.Admin, error) {
	email := normalizeEmail(in.Email)

	taken, err := s.admins.ExistsByEmail(ctx, email)
	if err != nil {
		return admin.Admin{}, err
	}
	if taken {
		return admin.Admin{}, admin.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return admin.Admin{}, ErrInternal
	}

	a := admin.Admin{Email: email, PasswordHash: string(hash)}
	if err := s.admins.Create(ctx, &a); err != nil {
		return admin.Admin{}, err
	}
	return a, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (admin.Admin, error) {
	existing, err := s.admins.GetByID(ctx, id)
	if err != nil {
		return admin.Admin{}, err
	}

	email := normalizeEmail(in.Email)
	if email != existing.Email {
		taken, err := s.admins.ExistsByEmail(ctx, email)
		if err != nil {
			return admin.Admin{}, err
		}
		if taken {
			return admin.Admin{}, admin.ErrEmailTaken
		}
	}

	existing.Email = email
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return admin.Admin{}, ErrInternal
		}
		existing.PasswordHash = string(hash)
	}

	if err := s.admins.Update(ctx, existing); err != nil {
		return admin.Admin{}, err
	}
	return s.admins.GetByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.admins.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (admin.Admin, error) {
	return s.admins.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (admin.Admin, error) {
	return s.admins.GetByEmail(ctx, normalizeEmail(email))
}

func (s *Service) List(ctx context.Context) ([]admin.Admin, error) {
	return s.admins.List(ctx)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
