package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"jobportal/internal/domain/company"
)

type CompanyRepository struct {
	coll *mongo.Collection
}

func NewCompanyRepository(db *mongo.Database) *CompanyRepository {
	return &CompanyRepository{coll: db.Collection(CollCompanies)}
}

func (r *CompanyRepository) Create(ctx context.Context, c *company.Company) error {
	now := time.Now().UTC()
	c.ID = primitive.NewObjectID()
	c.CreatedAt = now
	c.UpdatedAt = now
	if c.JobIDs == nil {
		c.JobIDs = []primitive.ObjectID{}
	}

	_, err := r.coll.InsertOne(ctx, c)
	if mongo.IsDuplicateKeyError(err) {
		return company.ErrEmailTaken
	}
	return err
}

func (r *CompanyRepository) GetByID(ctx context.Context, id string) (company.Company, error) {
	parsed, ok := oid(id)
	if !ok {
		return company.Company{}, company.ErrNotFound
	}

	var c company.Company
	err := r.coll.FindOne(ctx, bson.M{"_id": parsed}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return company.Company{}, company.ErrNotFound
	}
	return c, err
}

func (r *CompanyRepository) GetByEmail(ctx context.Context, email string) (company.Company, error) {
	var c company.Company
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return company.Company{}, company.ErrNotFound
	}
	return c, err
}

func (r *CompanyRepository) List(ctx context.Context) ([]company.Company, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	companies := []company.Company{}
	if err := cur.All(ctx, &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

// Update replaces the company document except for the job_ids cache,
// which only AppendJobID/RemoveJobID/ReplaceJobIDs may touch. A full
// replace here would race against concurrent job writes.
func (r *CompanyRepository) Update(ctx context.Context, c company.Company) error {
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": c.ID}, bson.M{"$set": bson.M{
		"name":          c.Name,
		"email":         c.Email,
		"password_hash": c.PasswordHash,
		"location":      c.Location,
		"description":   c.Description,
		"updated_at":    time.Now().UTC(),
	}})
	if mongo.IsDuplicateKeyError(err) {
		return company.ErrEmailTaken
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return company.ErrNotFound
	}
	return nil
}

func (r *CompanyRepository) Delete(ctx context.Context, id string) error {
	parsed, ok := oid(id)
	if !ok {
		return company.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": parsed})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return company.ErrNotFound
	}
	return nil
}

func (r *CompanyRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	parsed, ok := oid(id)
	if !ok {
		return false, nil
	}
	return existsByField(ctx, r.coll, "_id", parsed)
}

func (r *CompanyRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return existsByField(ctx, r.coll, "email", email)
}

// AppendJobID uses $push so the append is a single server-side operation;
// a read-modify-write of the whole array would let two concurrent job
// creations overwrite each other's entry.
func (r *CompanyRepository) AppendJobID(ctx context.Context, companyID, jobID string) error {
	companyOID, ok := oid(companyID)
	if !ok {
		return company.ErrNotFound
	}
	jobOID, ok := oid(jobID)
	if !ok {
		return company.ErrNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": companyOID},
		bson.M{
			"$push": bson.M{"job_ids": jobOID},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return company.ErrNotFound
	}
	return nil
}

func (r *CompanyRepository) RemoveJobID(ctx context.Context, companyID, jobID string) error {
	companyOID, ok := oid(companyID)
	if !ok {
		return company.ErrNotFound
	}
	jobOID, ok := oid(jobID)
	if !ok {
		return company.ErrNotFound
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": companyOID},
		bson.M{
			"$pull": bson.M{"job_ids": jobOID},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return company.ErrNotFound
	}
	return nil
}

func (r *CompanyRepository) ReplaceJobIDs(ctx context.Context, companyID string, jobIDs []string) error {
	companyOID, ok := oid(companyID)
	if !ok {
		return company.ErrNotFound
	}

	parsed := make([]primitive.ObjectID, 0, len(jobIDs))
	for _, id := range jobIDs {
		jobOID, ok := oid(id)
		if !ok {
			continue
		}
		parsed = append(parsed, jobOID)
	}

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": companyOID},
		bson.M{"$set": bson.M{
			"job_ids":    parsed,
			"updated_at": time.Now().UTC(),
		}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return company.ErrNotFound
	}
	return nil
}
