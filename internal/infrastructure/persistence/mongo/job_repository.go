package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"jobportal/internal/domain/job"
)

type JobRepository struct {
	coll *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{coll: db.Collection(CollJobs)}
}

func (r *JobRepository) Create(ctx context.Context, j *job.Job) error {
	now := time.Now().UTC()
	j.ID = primitive.NewObjectID()
	j.PostedDate = now
	j.CreatedAt = now
	j.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, j)
	return err
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (job.Job, error) {
	parsed, ok := oid(id)
	if !ok {
		return job.Job{}, job.ErrNotFound
	}

	var j job.Job
	err := r.coll.FindOne(ctx, bson.M{"_id": parsed}).Decode(&j)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return job.Job{}, job.ErrNotFound
	}
	return j, err
}

func (r *JobRepository) List(ctx context.Context) ([]job.Job, error) {
	return r.find(ctx, bson.M{})
}

func (r *JobRepository) ListByCompanyID(ctx context.Context, companyID string) ([]job.Job, error) {
	parsed, ok := oid(companyID)
	if !ok {
		return []job.Job{}, nil
	}
	return r.find(ctx, bson.M{"company_id": parsed})
}

func (r *JobRepository) SearchByPosition(ctx context.Context, position string) ([]job.Job, error) {
	return r.find(ctx, bson.M{"position": caseInsensitiveSubstring(position)})
}

func (r *JobRepository) SearchByLocation(ctx context.Context, location string) ([]job.Job, error) {
	return r.find(ctx, bson.M{"location": caseInsensitiveSubstring(location)})
}

func (r *JobRepository) ListBySkill(ctx context.Context, skill string) ([]job.Job, error) {
	return r.find(ctx, bson.M{"skills": skill})
}

// Update never touches posted_date; it is set once at creation.
func (r *JobRepository) Update(ctx context.Context, j job.Job) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": j.ID}, bson.M{"$set": bson.M{
		"company_id":  j.CompanyID,
		"position":    j.Position,
		"location":    j.Location,
		"experience":  j.Experience,
		"description": j.Description,
		"skills":      j.Skills,
		"job_type":    j.JobType,
		"updated_at":  time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *JobRepository) Delete(ctx context.Context, id string) error {
	parsed, ok := oid(id)
	if !ok {
		return job.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": parsed})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *JobRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	parsed, ok := oid(id)
	if !ok {
		return false, nil
	}
	return existsByField(ctx, r.coll, "_id", parsed)
}

func (r *JobRepository) find(ctx context.Context, filter bson.M) ([]job.Job, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	jobs := []job.Job{}
	if err := cur.All(ctx, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}
