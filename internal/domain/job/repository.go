package job

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	Create(ctx context.Context, j *Job) error
	GetByID(ctx context.Context, id string) (Job, error)
	List(ctx context.Context) ([]Job, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]Job, error)
	SearchByPosition(ctx context.Context, position string) ([]Job, error)
	SearchByLocation(ctx context.Context, location string) ([]Job, error)
	ListBySkill(ctx context.Context, skill string) ([]Job, error)
	Update(ctx context.Context, j Job) error
	Delete(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
}
