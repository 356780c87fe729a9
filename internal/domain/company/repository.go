package company

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("company not found")
	ErrEmailTaken = errors.New("company email already registered")
)

type Repository interface {
	Create(ctx context.Context, c *Company) error
	GetByID(ctx context.Context, id string) (Company, error)
	GetByEmail(ctx context.Context, email string) (Company, error)
	List(ctx context.Context) ([]Company, error)
	Update(ctx context.Context, c Company) error
	Delete(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// AppendJobID and RemoveJobID mutate the job_ids cache with a single
	// atomic array operation on the company document, so two concurrent
	// job writes against the same company cannot lose each other's entry.
	AppendJobID(ctx context.Context, companyID, jobID string) error
	RemoveJobID(ctx context.Context, companyID, jobID string) error

	// ReplaceJobIDs overwrites the whole cache; used by reconciliation.
	ReplaceJobIDs(ctx context.Context, companyID string, jobIDs []string) error
}
