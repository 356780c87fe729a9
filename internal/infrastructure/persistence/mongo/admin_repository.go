package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"jobportal/internal/domain/admin"
)

type AdminRepository struct {
	coll *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) *AdminRepository {
	return &AdminRepository{coll: db.Collection(CollAdmins)}
}

func (r *AdminRepository) Create(ctx context.Context, a *admin.Admin) error {
	now := time.Now().UTC()
	a.ID = primitive.NewObjectID()
	a.CreatedAt = now
	a.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, a)
	if mongo.IsDuplicateKeyError(err) {
		return admin.ErrEmailTaken
	}
	return err
}

func (r *AdminRepository) GetByID(ctx context.Context, id string) (admin.Admin, error) {
	parsed, ok := oid(id)
	if !ok {
		return admin.Admin{}, admin.ErrNotFound
	}

	var a admin.Admin
	err := r.coll.FindOne(ctx, bson.M{"_id": parsed}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return admin.Admin{}, admin.ErrNotFound
	}
	return a, err
}

func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (admin.Admin, error) {
	var a admin.Admin
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&a)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return admin.Admin{}, admin.ErrNotFound
	}
	return a, err
}

func (r *AdminRepository) List(ctx context.Context) ([]admin.Admin, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	admins := []admin.Admin{}
	if err := cur.All(ctx, &admins); err != nil {
		return nil, err
	}
	return admins, nil
}

func (r *AdminRepository) Update(ctx context.Context, a admin.Admin) error {
	a.UpdatedAt = time.Now().UTC()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": a.ID}, a)
	if mongo.IsDuplicateKeyError(err) {
		return admin.ErrEmailTaken
	}
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return admin.ErrNotFound
	}
	return nil
}

func (r *AdminRepository) Delete(ctx context.Context, id string) error {
	parsed, ok := oid(id)
	if !ok {
		return admin.ErrNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": parsed})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return admin.ErrNotFound
	}
	return nil
}

func (r *AdminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return existsByField(ctx, r.coll, "email", email)
}
