package candidate

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("candidate not found")
	ErrEmailTaken = errors.New("candidate email already registered")
)

type Repository interface {
	Create(ctx context.Context, c *Candidate) error
	GetByID(ctx context.Context, id string) (Candidate, error)
	GetByEmail(ctx context.Context, email string) (Candidate, error)
	List(ctx context.Context) ([]Candidate, error)
	ListBySkill(ctx context.Context, skill string) ([]Candidate, error)
	Update(ctx context.Context, c Candidate) error
	Delete(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
