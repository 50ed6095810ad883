package work

type AssignWorkRequest struct {
	EmployeeID  string `json:"employee_id" binding:"required,uuid"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	DueDate     string `json:"due_date"`
}

type SubmitReportRequest struct {
	Report string `json:"report" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ASSIGNED IN_PROGRESS COMPLETED REPORTED"`
}

type WorkResponse struct {
	ID                   string `json:"id"`
	EmployeeID           string `json:"employee_id"`
	EmployeeName         string `json:"employee_name,omitempty"`
	Title                string `json:"title"`
	Description          string `json:"description,omitempty"`
	AssignedDate         string `json:"assigned_date"`
	DueDate              string `json:"due_date,omitempty"`
	SubmittedDate        string `json:"submitted_date,omitempty"`
	Status               string `json:"status"`
	Report               string `json:"report,omitempty"`
	AssignmentAttachment string `json:"assignment_attachment,omitempty"`
	ReportAttachment     string `json:"report_attachment,omitempty"`
}
