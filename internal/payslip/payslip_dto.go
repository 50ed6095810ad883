package payslip

type GeneratePayslipRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	Period     string `json:"period" binding:"required"`
}

type GenerateAllRequest struct {
	Period string `json:"period"`
}

// BatchResult summarizes one batch run over the active staff.
type BatchResult struct {
	Period    string `json:"period"`
	Generated int    `json:"generated"`
	Failed    int    `json:"failed"`
}

type PayslipResponse struct {
	ID              string `json:"id"`
	EmployeeID      string `json:"employee_id"`
	Period          string `json:"period"`
	Basic           string `json:"basic"`
	Hra             string `json:"hra"`
	Flexi           string `json:"flexi"`
	Gross           string `json:"gross"`
	PfDeduction     string `json:"pf_deduction"`
	ProfessionalTax string `json:"professional_tax"`
	TotalDeductions string `json:"total_deductions"`
	NetPay          string `json:"net_pay"`
	Location        string `json:"location,omitempty"`
	Balance         string `json:"balance"`
	AggDeduction    string `json:"agg_deduction"`
	IncomeUnderHead string `json:"income_under_head"`
	TaxCredit       string `json:"tax_credit"`
	FileName        string `json:"file_name,omitempty"`
	GeneratedAt     string `json:"generated_at"`
}
