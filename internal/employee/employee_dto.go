package employee

type CreateEmployeeRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Mobile     string `json:"mobile"`
	CardNumber string `json:"card_number"`

	LoginRole string `json:"login_role" binding:"omitempty,oneof=admin hr employee"`
	JobRole   string `json:"job_role"`
	Domain    string `json:"domain"`
	Gender    string `json:"gender"`

	JoiningDate string `json:"joining_date" binding:"required"`
	Salary      string `json:"salary" binding:"required"`
	DaysPresent int    `json:"days_present"`
	PaidLeaves  int    `json:"paid_leaves"`
	Password    string `json:"password" binding:"required,min=8"`

	BankAccountNumber string `json:"bank_account_number"`
	BankName          string `json:"bank_name"`
	PfNumber          string `json:"pf_number"`
	PanNumber         string `json:"pan_number"`
	UanNumber         string `json:"uan_number"`
	EpsNumber         string `json:"eps_number"`
	EsiNumber         string `json:"esi_number"`
}

type UpdateEmployeeRequest struct {
	FirstName  string `json:"first_name" binding:"required"`
	LastName   string `json:"last_name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Mobile     string `json:"mobile"`
	CardNumber string `json:"card_number"`

	LoginRole string `json:"login_role" binding:"omitempty,oneof=admin hr employee"`
	JobRole   string `json:"job_role"`
	Domain    string `json:"domain"`
	Gender    string `json:"gender"`

	JoiningDate string `json:"joining_date" binding:"required"`
	Salary      string `json:"salary" binding:"required"`
	DaysPresent int    `json:"days_present"`
	PaidLeaves  int    `json:"paid_leaves"`

	BankAccountNumber string `json:"bank_account_number"`
	BankName          string `json:"bank_name"`
	PfNumber          string `json:"pf_number"`
	PanNumber         string `json:"pan_number"`
	UanNumber         string `json:"uan_number"`
	EpsNumber         string `json:"eps_number"`
	EsiNumber         string `json:"esi_number"`
}

type UpdateBankDetailsRequest struct {
	BankAccountNumber string `json:"bank_account_number" binding:"required"`
	BankName          string `json:"bank_name" binding:"required"`
	PfNumber          string `json:"pf_number"`
	PanNumber         string `json:"pan_number"`
	UanNumber         string `json:"uan_number"`
	EpsNumber         string `json:"eps_number"`
	EsiNumber         string `json:"esi_number"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type EmployeeResponse struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Mobile     string `json:"mobile"`
	CardNumber string `json:"card_number"`

	LoginRole string `json:"login_role"`
	JobRole   string `json:"job_role"`
	Domain    string `json:"domain"`
	Gender    string `json:"gender"`

	JoiningDate string `json:"joining_date"`
	Salary      string `json:"salary"`
	DaysPresent int    `json:"days_present"`
	PaidLeaves  int    `json:"paid_leaves"`

	BankAccountNumber string `json:"bank_account_number"`
	BankName          string `json:"bank_name"`
	PfNumber          string `json:"pf_number"`
	PanNumber         string `json:"pan_number"`
	UanNumber         string `json:"uan_number"`
	EpsNumber         string `json:"eps_number"`
	EsiNumber         string `json:"esi_number"`

	Status string `json:"status"`
}
