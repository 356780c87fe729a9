package application

import (
	"context"
	"log"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"jobportal/internal/domain/application"
	"jobportal/internal/domain/candidate"
	"jobportal/internal/domain/job"
	"jobportal/internal/infrastructure/email"
)

type CreateInput struct {
	CandidateID   string
	JobID         string
	Qualification string
	ResumeLink    string
	Status        string
}

type Usecase interface {
	Create(ctx context.Context, in CreateInput) (application.Application, error)
	UpdateStatus(ctx context.Context, id, status string) (application.Application, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (application.Application, error)
	List(ctx context.Context) ([]application.Application, error)
	ListByCandidate(ctx context.Context, candidateID string) ([]application.Application, error)
	ListByJob(ctx context.Context, jobID string) ([]application.Application, error)
	ListByStatus(ctx context.Context, status string) ([]application.Application, error)
}

// Service tracks job applications. Unlike jobs, applications keep no
// denormalized backlink on either side, so the only integrity work is
// checking both foreign ids at creation time.
type Service struct {
	apps       application.Repository
	candidates candidate.Repository
	jobs       job.Repository
	notifier   email.Notifier
	logger     *log.Logger
}

func NewService(apps application.Repository, candidates candidate.Repository, jobs job.Repository, notifier email.Notifier, logger *log.Logger) *Service {
	if notifier == nil {
		notifier = email.NoopNotifier{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Service{apps: apps, candidates: candidates, jobs: jobs, notifier: notifier, logger: logger}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (application.Application, error) {
	candidateOID, err := primitive.ObjectIDFromHex(strings.TrimSpace(in.CandidateID))
	if err != nil {
		return application.Application{}, candidate.ErrNotFound
	}
	jobOID, err := primitive.ObjectIDFromHex(strings.TrimSpace(in.JobID))
	if err != nil {
		return application.Application{}, job.ErrNotFound
	}

	exists, err := s.candidates.ExistsByID(ctx, candidateOID.Hex())
	if err != nil {
		return application.Application{}, err
	}
	if !exists {
		return application.Application{}, candidate.ErrNotFound
	}

	exists, err = s.jobs.ExistsByID(ctx, jobOID.Hex())
	if err != nil {
		return application.Application{}, err
	}
	if !exists {
		return application.Application{}, job.ErrNotFound
	}

	status := strings.TrimSpace(in.Status)
	if status == "" {
		status = application.StatusApplied
	}

	a := application.Application{
		CandidateID:   candidateOID,
		JobID:         jobOID,
		Qualification: in.Qualification,
		ResumeLink:    in.ResumeLink,
		Status:        status,
	}
	if err := s.apps.Create(ctx, &a); err != nil {
		return application.Application{}, err
	}
	return a, nil
}

// UpdateStatus stores any status string as-is; unrecognized values just
// produce the generic notification. Delivery is fire-and-forget and never
// affects the returned result.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (application.Application, error) {
	a, err := s.apps.UpdateStatus(ctx, id, strings.TrimSpace(status))
	if err != nil {
		return application.Application{}, err
	}

	s.notifyStatusChange(ctx, a)
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.apps.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (application.Application, error) {
	return s.apps.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]application.Application, error) {
	return s.apps.List(ctx)
}

func (s *Service) ListByCandidate(ctx context.Context, candidateID string) ([]application.Application, error) {
	return s.apps.ListByCandidateID(ctx, candidateID)
}

func (s *Service) ListByJob(ctx context.Context, jobID string) ([]application.Application, error) {
	return s.apps.ListByJobID(ctx, jobID)
}

func (s *Service) ListByStatus(ctx context.Context, status string) ([]application.Application, error) {
	return s.apps.ListByStatus(ctx, status)
}

func (s *Service) notifyStatusChange(ctx context.Context, a application.Application) {
	cand, err := s.candidates.GetByID(ctx, a.CandidateID.Hex())
	if err != nil {
		s.logger.Printf("status notification for application %s skipped, candidate lookup failed: %v", a.ID.Hex(), err)
		return
	}

	position := "the position you applied for"
	if j, err := s.jobs.GetByID(ctx, a.JobID.Hex()); err == nil {
		position = j.Position
	}

	subject, body := statusMessage(a.Status, cand.Name, position)
	go s.notifier.Send(cand.Email, subject, body)
}
