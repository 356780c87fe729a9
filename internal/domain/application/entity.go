package application

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Recognized statuses. Status itself stays a free-form string: an
// unrecognized value is stored as-is and only falls back to a generic
// notification, it is never rejected.
const (
	StatusApplied      = "applied"
	StatusAccepted     = "accepted"
	StatusRejected     = "rejected"
	StatusWithdrawn    = "withdrawn"
	StatusInterviewing = "interviewing"
)

type Application struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CandidateID     primitive.ObjectID `bson:"candidate_id" json:"candidate_id"`
	JobID           primitive.ObjectID `bson:"job_id" json:"job_id"`
	Qualification   string             `bson:"qualification" json:"qualification"`
	ResumeLink      string             `bson:"resume_link" json:"resume_link"`
	Status          string             `bson:"status" json:"status"`
	ApplicationDate time.Time          `bson:"application_date" json:"application_date"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}
