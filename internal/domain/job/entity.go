package job

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Job struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CompanyID   primitive.ObjectID `bson:"company_id" json:"company_id"`
	Position    string             `bson:"position" json:"position"`
	Location    string             `bson:"location" json:"location"`
	Experience  string             `bson:"experience" json:"experience"`
	Description string             `bson:"description" json:"description"`
	Skills      []string           `bson:"skills" json:"skills"`
	JobType     string             `bson:"job_type" json:"job_type"`
	PostedDate  time.Time          `bson:"posted_date" json:"posted_date"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}
