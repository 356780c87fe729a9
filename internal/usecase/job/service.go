package job

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobportal/internal/domain/company"
	"jobportal/internal/domain/job"
)

var ErrInvalidInput = errors.New("invalid input")

const (
	cacheKeyPrefix = "jobs:"
	cacheTTL       = 10 * time.Minute
)

// Cache is the read-side cache for directory searches. *cache.Redis
// satisfies it; a nil Cache disables caching entirely.
type Cache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

type CreateInput struct {
	CompanyID   string
	Position    string
	Location    string
	Experience  string
	Description string
	Skills      []string
	JobType     string
}

type UpdateInput struct {
	CompanyID   string
	Position    string
	Location    string
	Experience  string
	Description string
	Skills      []string
	JobType     string
}

type Usecase interface {
	Create(ctx context.Context, in CreateInput) (job.Job, error)
	Update(ctx context.Context, id string, in UpdateInput) (job.Job, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (job.Job, error)
	List(ctx context.Context) ([]job.Job, error)
	ListByCompany(ctx context.Context, companyID string) ([]job.Job, error)
	SearchByPosition(ctx context.Context, position string) ([]job.Job, error)
	SearchByLocation(ctx context.Context, location string) ([]job.Job, error)
	SearchBySkill(ctx context.Context, skill string) ([]job.Job, error)
	ReconcileCompanyJobs(ctx context.Context, companyID string) error
}

// Service is both the job directory and the coordinator that keeps a
// company's job_ids cache in step with the jobs that reference it. The
// jobs collection is the source of truth; job_ids is derived and can be
// rebuilt with ReconcileCompanyJobs.
type Service struct {
	jobs      job.Repository
	companies company.Repository
	cache     Cache
	logger    *log.Logger
}

func NewService(jobs job.Repository, companies company.Repository, cache Cache, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{jobs: jobs, companies: companies, cache: cache, logger: logger}
}

// Create inserts the job, then appends its id onto the owning company's
// job_ids with an atomic array push. The two writes are still separate
// documents: a crash between them leaves the job reachable by id but
// missing from the directory until reconciliation runs.
func (s *Service) Create(ctx context.Context, in CreateInput) (job.Job, error) {
	companyOID, err := primitive.ObjectIDFromHex(strings.TrimSpace(in.CompanyID))
	if err != nil {
		return job.Job{}, company.ErrNotFound
	}
	if len(in.Skills) == 0 {
		return job.Job{}, fmt.Errorf("%w: skills cannot be empty", ErrInvalidInput)
	}

	exists, err := s.companies.ExistsByID(ctx, companyOID.Hex())
	if err != nil {
		return job.Job{}, err
	}
	if !exists {
		return job.Job{}, company.ErrNotFound
	}

	j := job.Job{
		CompanyID:   companyOID,
		Position:    in.Position,
		Location:    in.Location,
		Experience:  in.Experience,
		Description: in.Description,
		Skills:      in.Skills,
		JobType:     in.JobType,
	}
	if err := s.jobs.Create(ctx, &j); err != nil {
		return job.Job{}, err
	}

	if err := s.companies.AppendJobID(ctx, companyOID.Hex(), j.ID.Hex()); err != nil {
		s.logger.Printf("job %s created but company %s backlink failed, directory needs reconciliation: %v",
			j.ID.Hex(), companyOID.Hex(), err)
		return job.Job{}, err
	}

	s.invalidateCache(ctx)
	return j, nil
}

// Update may move a job to another company; the new owner must exist.
// Neither company's job_ids cache is rewritten on transfer, matching the
// original portal's behavior: the stale entry stays until
// ReconcileCompanyJobs is run against the affected companies.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (job.Job, error) {
	existing, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return job.Job{}, err
	}
	if len(in.Skills) == 0 {
		return job.Job{}, fmt.Errorf("%w: skills cannot be empty", ErrInvalidInput)
	}

	companyOID, err := primitive.ObjectIDFromHex(strings.TrimSpace(in.CompanyID))
	if err != nil {
		return job.Job{}, company.ErrNotFound
	}
	if companyOID != existing.CompanyID {
		exists, err := s.companies.ExistsByID(ctx, companyOID.Hex())
		if err != nil {
			return job.Job{}, err
		}
		if !exists {
			return job.Job{}, company.ErrNotFound
		}
	}

	existing.CompanyID = companyOID
	existing.Position = in.Position
	existing.Location = in.Location
	existing.Experience = in.Experience
	existing.Description = in.Description
	existing.Skills = in.Skills
	existing.JobType = in.JobType

	if err := s.jobs.Update(ctx, existing); err != nil {
		return job.Job{}, err
	}

	s.invalidateCache(ctx)
	return s.jobs.GetByID(ctx, id)
}

// Delete detaches the job from its owner's directory first, then removes
// the document, keeping the window where a listed id has no document as
// small as the two separate writes allow. Deleting a job whose owning
// company no longer exists fails with company.ErrNotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	j, err := s.jobs.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.companies.RemoveJobID(ctx, j.CompanyID.Hex(), j.ID.Hex()); err != nil {
		return err
	}

	if err := s.jobs.Delete(ctx, id); err != nil {
		s.logger.Printf("job %s detached from company %s but delete failed: %v",
			j.ID.Hex(), j.CompanyID.Hex(), err)
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

// ReconcileCompanyJobs rebuilds a company's job_ids from the jobs that
// reference it, repairing any drift left by interrupted writes or
// ownership transfers.
func (s *Service) ReconcileCompanyJobs(ctx context.Context, companyID string) error {
	exists, err := s.companies.ExistsByID(ctx, companyID)
	if err != nil {
		return err
	}
	if !exists {
		return company.ErrNotFound
	}

	owned, err := s.jobs.ListByCompanyID(ctx, companyID)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(owned))
	for _, j := range owned {
		ids = append(ids, j.ID.Hex())
	}

	if err := s.companies.ReplaceJobIDs(ctx, companyID, ids); err != nil {
		return err
	}

	s.invalidateCache(ctx)
	return nil
}

func (s *Service) GetByID(ctx context.Context, id string) (job.Job, error) {
	return s.jobs.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]job.Job, error) {
	return s.jobs.List(ctx)
}

func (s *Service) ListByCompany(ctx context.Context, companyID string) ([]job.Job, error) {
	return s.jobs.ListByCompanyID(ctx, companyID)
}

func (s *Service) SearchByPosition(ctx context.Context, position string) ([]job.Job, error) {
	position = strings.TrimSpace(position)
	if position == "" {
		return nil, fmt.Errorf("%w: position cannot be empty", ErrInvalidInput)
	}
	return s.cached(ctx, "search:position:"+strings.ToLower(position), func() ([]job.Job, error) {
		return s.jobs.SearchByPosition(ctx, position)
	})
}

func (s *Service) SearchByLocation(ctx context.Context, location string) ([]job.Job, error) {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil, fmt.Errorf("%w: location cannot be empty", ErrInvalidInput)
	}
	return s.cached(ctx, "search:location:"+strings.ToLower(location), func() ([]job.Job, error) {
		return s.jobs.SearchByLocation(ctx, location)
	})
}

func (s *Service) SearchBySkill(ctx context.Context, skill string) ([]job.Job, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return nil, fmt.Errorf("%w: skill cannot be empty", ErrInvalidInput)
	}
	return s.cached(ctx, "search:skill:"+strings.ToLower(skill), func() ([]job.Job, error) {
		return s.jobs.ListBySkill(ctx, skill)
	})
}

func (s *Service) cached(ctx context.Context, key string, load func() ([]job.Job, error)) ([]job.Job, error) {
	if s.cache == nil {
		return load()
	}

	key = cacheKeyPrefix + key
	var hit []job.Job
	if ok, err := s.cache.GetJSON(ctx, key, &hit); err == nil && ok {
		return hit, nil
	}

	jobs, err := load()
	if err != nil {
		return nil, err
	}
	if err := s.cache.SetJSON(ctx, key, jobs, cacheTTL); err != nil {
		s.logger.Printf("caching %s failed: %v", key, err)
	}
	return jobs, nil
}

func (s *Service) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteByPattern(ctx, cacheKeyPrefix+"*"); err != nil {
		s.logger.Printf("cache invalidation failed: %v", err)
	}
}
