package candidate

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"jobportal/internal/domain/candidate"
)

var ErrInternal = errors.New("internal error")

type CreateInput struct {
	Name       string
	Email      string
	Password   string
	Phone      string
	ResumeLink string
	Skills     []string
}

type UpdateInput struct {
	Name       string
	Email      string
	Password   string
	Phone      string
	ResumeLink string
	Skills     []string
}

type Usecase interface {
	Create(ctx context.Context, in CreateInput) (candidate.Candidate, error)
	Update(ctx context.Context, id string, in UpdateInput) (candidate.Candidate, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (candidate.Candidate, error)
	GetByEmail(ctx context.Context, email string) (candidate.Candidate, error)
	List(ctx context.Context) ([]candidate.Candidate, error)
	ListBySkill(ctx context.Context, skill string) ([]candidate.Candidate, error)
}

type Service struct {
	candidates candidate.Repository
}

func NewService(candidates candidate.Repository) *Service {
	return &Service{candidates: candidates}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (candidate.Candidate, error) {
	email := normalizeEmail(in.Email)

	taken, err := s.candidates.ExistsByEmail(ctx, email)
	if err != nil {
		return candidate.Candidate{}, err
	}
	if taken {
		return candidate.Candidate{}, candidate.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return candidate.Candidate{}, ErrInternal
	}

	c := candidate.Candidate{
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        in.Phone,
		ResumeLink:   in.ResumeLink,
		Skills:       in.Skills,
	}
	if err := s.candidates.Create(ctx, &c); err != nil {
		return candidate.Candidate{}, err
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (candidate.Candidate, error) {
	existing, err := s.candidates.GetByID(ctx, id)
	if err != nil {
		return candidate.Candidate{}, err
	}

	email := normalizeEmail(in.Email)
	if email != existing.Email {
		taken, err := s.candidates.ExistsByEmail(ctx, email)
		if err != nil {
			return candidate.Candidate{}, err
		}
		if taken {
			return candidate.Candidate{}, candidate.ErrEmailTaken
		}
	}

	existing.Name = in.Name
	existing.Email = email
	existing.Phone = in.Phone
	existing.ResumeLink = in.ResumeLink
	existing.Skills = in.Skills

	// Password only changes when the caller supplies a new one.
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return candidate.Candidate{}, ErrInternal
		}
		existing.PasswordHash = string(hash)
	}

	if err := s.candidates.Update(ctx, existing); err != nil {
		return candidate.Candidate{}, err
	}
	return s.candidates.GetByID(ctx, id)
}

// Delete removes only the candidate document. Applications referencing
// the candidate are left in place and stay reachable by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.candidates.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (candidate.Candidate, error) {
	return s.candidates.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (candidate.Candidate, error) {
	return s.candidates.GetByEmail(ctx, normalizeEmail(email))
}

func (s *Service) List(ctx context.Context) ([]candidate.Candidate, error) {
	return s.candidates.List(ctx)
}

func (s *Service) ListBySkill(ctx context.Context, skill string) ([]candidate.Candidate, error) {
	return s.candidates.ListBySkill(ctx, skill)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
