package dto

type CreateCandidateRequest struct {
	Name       string   `json:"name" validate:"required,max=100"`
	Email      string   `json:"email" validate:"required,email"`
	Password   string   `json:"password" validate:"required,min=8"`
	Phone      string   `json:"phone" validate:"required,max=20"`
	ResumeLink string   `json:"resume_link" validate:"omitempty,max=500"`
	Skills     []string `json:"skills"`
}

type UpdateCandidateRequest struct {
	Name       string   `json:"name" validate:"required,max=100"`
	Email      string   `json:"email" validate:"required,email"`
	Password   string   `json:"password" validate:"omitempty,min=8"`
	Phone      string   `json:"phone" validate:"required,max=20"`
	ResumeLink string   `json:"resume_link" validate:"omitempty,max=500"`
	Skills     []string `json:"skills"`
}
