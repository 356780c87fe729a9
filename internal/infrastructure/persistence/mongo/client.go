package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jobportal/internal/config"
)

const (
	CollAdmins       = "admins"
	CollCandidates   = "candidates"
	CollCompanies    = "companies"
	CollJobs         = "jobs"
	CollApplications = "job_applications"
)

type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, cfg config.MongoConfig) (*Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cl, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := cl.Ping(ctx, nil); err != nil {
		_ = cl.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Client{client: cl, db: cl.Database(cfg.Database)}, nil
}

func (c *Client) Database() *mongo.Database {
	return c.db
}

func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// EnsureIndexes creates the unique email index each identity collection
// relies on for its per-collection uniqueness guarantee, plus the lookup
// indexes the directory queries use. Safe to run on every startup.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	uniqueEmail := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	for _, coll := range []string{CollAdmins, CollCandidates, CollCompanies} {
		if _, err := c.db.Collection(coll).Indexes().CreateOne(ctx, uniqueEmail); err != nil {
			return fmt.Errorf("ensure unique email index on %s: %w", coll, err)
		}
	}

	jobIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "company_id", Value: 1}}},
		{Keys: bson.D{{Key: "skills", Value: 1}}},
	}
	if _, err := c.db.Collection(CollJobs).Indexes().CreateMany(ctx, jobIndexes); err != nil {
		return fmt.Errorf("ensure job indexes: %w", err)
	}

	appIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "candidate_id", Value: 1}}},
		{Keys: bson.D{{Key: "job_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}
	if _, err := c.db.Collection(CollApplications).Indexes().CreateMany(ctx, appIndexes); err != nil {
		return fmt.Errorf("ensure application indexes: %w", err)
	}

	return nil
}
