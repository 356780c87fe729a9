package dto

type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	Location    string `json:"location" validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}

type UpdateCompanyRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"omitempty,min=8"`
	Location    string `json:"location" validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=1000"`
}
