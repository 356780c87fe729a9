package company

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Company owns zero or more jobs. JobIDs is a denormalized, insertion-ordered
// cache of the jobs whose CompanyID points back here; the jobs collection is
// the source of truth and JobIDs is rebuildable from it.
type Company struct {
	ID           primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name         string               `bson:"name" json:"name"`
	Email        string               `bson:"email" json:"email"`
	PasswordHash string               `bson:"password_hash" json:"-"`
	Location     string               `bson:"location" json:"location"`
	Description  string               `bson:"description" json:"description"`
	JobIDs       []primitive.ObjectID `bson:"job_ids" json:"job_ids"`
	CreatedAt    time.Time            `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time            `bson:"updated_at" json:"updated_at"`
}
