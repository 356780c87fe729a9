package admin

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("admin not found")
	ErrEmailTaken = errors.New("admin email already registered")
)

type Repository interface {
	Create(ctx context.Context, a *Admin) error
	GetByID(ctx context.Context, id string) (Admin, error)
	GetByEmail(ctx context.Context, email string) (Admin, error)
	List(ctx context.Context) ([]Admin, error)
	Update(ctx context.Context, a Admin) error
	Delete(ctx context.Context, id string) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
