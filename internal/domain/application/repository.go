package application

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("job application not found")

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByID(ctx context.Context, id string) (Application, error)
	List(ctx context.Context) ([]Application, error)
	ListByCandidateID(ctx context.Context, candidateID string) ([]Application, error)
	ListByJobID(ctx context.Context, jobID string) ([]Application, error)
	ListByStatus(ctx context.Context, status string) ([]Application, error)
	UpdateStatus(ctx context.Context, id, status string) (Application, error)
	Delete(ctx context.Context, id string) error
}
