package job

type CreateJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ClosingDate string `json:"closing_date"`
}

type UpdateJobRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	ClosingDate string `json:"closing_date"`
}

type JobResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ClosingDate string `json:"closing_date,omitempty"`
	IsActive    bool   `json:"is_active"`
}
