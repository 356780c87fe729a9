package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"jobportal/internal/domain/candidate"
)

type CandidateRepository struct {
	coll *mongo.Collection
}

func NewCandidateRepository(db *mongo.Database) *CandidateRepository {
	return &CandidateRepository{coll: db.Collection(CollCandidates)}
}

func (r *CandidateRepository) Create(ctx context.Context, c *candidate.Candidate) error {
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.Skills == nil {
		c.Skills = []string{}
	}

	_, err := r.coll.InsertOne(ctx, c)
	if mongo.IsDuplicateKeyError(err) {
		return candidate.ErrEmailTaken
	}
	return err
}

func (r *CandidateRepository) GetByID(ctx context.Context, id string) (candidate.Candidate, error) {
	parsed, ok := oid(id)
	if !ok {
		return candidate.Candidate{}, candidate.ErrNotFound
	}

	var c candidate.Candidate
	err := r.coll.FindOne(ctx, bson.M{"_id": parsed}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	return c, err
}

func (r *CandidateRepository) GetByEmail(ctx context.Context, email string) (candidate.Candidate, error) {
	var c candidate.Candidate
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	return c, err
}

func (r *CandidateRepository) List(ctx context.Context) ([]candidate.Candidate, error) {
	return r.find(ctx, bson.M{})
}

func (r *CandidateRepository) ListBySkill(ctx context.Context, skill string) ([]candidate.Candidate, error) {
	return r.find(ctx, bson.M{"skills": skill})
}

func (r *CandidateRepository) Update(ctx context.Context, c candidate.Candidate) error {
	c.UpdatedAt = time.Now().UTC()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if mongo.IsDuplicateKeyError(err) {
		return candidate.ErrEmailTaken
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return candidate.ErrNotFound
	}
	return nil
}

func (r *CandidateRepository) Delete(ctx context.Context, id string) error {
	parsed, ok := oid(id)
	if !ok {
		return candidate.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": parsed})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return candidate.ErrNotFound
	}
	return nil
}

func (r *CandidateRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	parsed, ok := oid(id)
	if !ok {
		return false, nil
	}
	return existsByField(ctx, r.coll, "_id", parsed)
}

func (r *CandidateRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return existsByField(ctx, r.coll, "email", email)
}

func (r *CandidateRepository) find(ctx context.Context, filter bson.M) ([]candidate.Candidate, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	candidates := []candidate.Candidate{}
	if err := cur.All(ctx, &candidates); err != nil {
		return nil, err
	}
	return candidates, nil
}
