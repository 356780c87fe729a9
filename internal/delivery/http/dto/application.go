package dto

type CreateApplicationRequest struct {
	CandidateID   string `json:"candidate_id" validate:"required"`
	JobID         string `json:"job_id" validate:"required"`
	Qualification string `json:"qualification" validate:"required,max=500"`
	ResumeLink    string `json:"resume_link" validate:"omitempty,max=500"`
	Status        string `json:"status" validate:"omitempty,max=50"`
}
