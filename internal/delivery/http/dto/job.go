package dto

type CreateJobRequest struct {
	CompanyID   string   `json:"company_id" validate:"required"`
	Position    string   `json:"position" validate:"required,max=100"`
	Location    string   `json:"location" validate:"required,max=255"`
	Experience  string   `json:"experience" validate:"required,max=50"`
	Description string   `json:"description" validate:"required,max=2000"`
	Skills      []string `json:"skills" validate:"required,min=1"`
	JobType     string   `json:"job_type" validate:"required,max=50"`
}

type UpdateJobRequest struct {
	CompanyID   string   `json:"company_id" validate:"required"`
	Position    string   `json:"position" validate:"required,max=100"`
	Location    string   `json:"location" validate:"required,max=255"`
	Experience  string   `json:"experience" validate:"required,max=50"`
	Description string   `json:"description" validate:"required,max=2000"`
	Skills      []string `json:"skills" validate:"required,min=1"`
	JobType     string   `json:"job_type" validate:"required,max=50"`
}
