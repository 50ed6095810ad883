package application

type ApplyRequest struct {
	JobID     string `json:"job_id" binding:"required,uuid"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
}

type VerifyOtpRequest struct {
	Email string `json:"email" binding:"required,email"`
	Code  string `json:"code" binding:"required,len=6,numeric"`
}

type ApplyResponse struct {
	Email   string `json:"email"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type ApplicationResponse struct {
	ID         string `json:"id"`
	JobID      string `json:"job_id"`
	JobTitle   string `json:"job_title,omitempty"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name,omitempty"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	ResumePath string `json:"resume_path,omitempty"`
	Status     string `json:"status"`
	AppliedAt  string `json:"applied_at"`
}
