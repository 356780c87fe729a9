package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jobportal/internal/domain/application"
)

type ApplicationRepository struct {
	coll *mongo.Collection
}

func NewApplicationRepository(db *mongo.Database) *ApplicationRepository {
	return &ApplicationRepository{coll: db.Collection(CollApplications)}
}

func (r *ApplicationRepository) Create(ctx context.Context, a *application.Application) error {
	now := time.Now().UTC()
	a.ID = primitive.NewObjectID()
	a.ApplicationDate = now
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, a)
	return err
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (application.Application, error) {
	parsed, ok := oid(id)
	if !ok {
		return application.Application{}, application.ErrNotFound
	}

	var a application.Application
	err := r.coll.FindOne(ctx, bson.M{"_id": parsed}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return application.Application{}, application.ErrNotFound
	}
	return a, err
}

func (r *ApplicationRepository) List(ctx context.Context) ([]application.Application, error) {
	return r.find(ctx, bson.M{})
}

func (r *ApplicationRepository) ListByCandidateID(ctx context.Context, candidateID string) ([]application.Application, error) {
	parsed, ok := oid(candidateID)
	if !ok {
		return []application.Application{}, nil
	}
	return r.find(ctx, bson.M{"candidate_id": parsed})
}

func (r *ApplicationRepository) ListByJobID(ctx context.Context, jobID string) ([]application.Application, error) {
	parsed, ok := oid(jobID)
	if !ok {
		return []application.Application{}, nil
	}
	return r.find(ctx, bson.M{"job_id": parsed})
}

func (r *ApplicationRepository) ListByStatus(ctx context.Context, status string) ([]application.Application, error) {
	return r.find(ctx, bson.M{"status": status})
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id, status string) (application.Application, error) {
	parsed, ok := oid(id)
	if !ok {
		return application.Application{}, application.ErrNotFound
	}

	var a application.Application
	err := r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": parsed},
		bson.M{"$set": bson.M{
			"status":     status,
			"updated_at": time.Now().UTC(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return application.Application{}, application.ErrNotFound
	}
	return a, err
}

func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	parsed, ok := oid(id)
	if !ok {
		return application.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": parsed})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) find(ctx context.Context, filter bson.M) ([]application.Application, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	apps := []application.Application{}
	if err := cur.All(ctx, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}
