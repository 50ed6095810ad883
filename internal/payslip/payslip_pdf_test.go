package payslip_test

import (
	"bytes"
	"testing"
	"time"

	"neb-hris/internal/payslip"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPDFRenderer_Render(t *testing.T) {
	renderer := payslip.NewPDFRenderer("Nebulytix Technologies", "")

	policy := payslip.DefaultSalaryPolicy()
	b := policy.Compute(decimal.NewFromInt(50000))

	slip := &payslip.Payslip{
		ID:              uuid.New(),
		EmployeeID:      uuid.New(),
		Period:          "August 2026",
		Basic:           b.Basic,
		Hra:             b.Hra,
		Flexi:           b.Flexi,
		Gross:           b.Gross,
		PfDeduction:     b.PfDeduction,
		ProfessionalTax: b.ProfessionalTax,
		TotalDeductions: b.TotalDeductions,
		NetPay:          b.NetPay,
		Balance:         b.Balance,
		AggDeduction:    b.AggDeduction,
		IncomeUnderHead: b.IncomeUnderHead,
		TaxCredit:       b.TaxCredit,
		GeneratedAt:     time.Now(),
	}
	view := &payslip.PayslipEmployee{
		ID:          slip.EmployeeID,
		FirstName:   "Asha",
		LastName:    "Nair",
		CardNumber:  "NEB-000042",
		JoiningDate: time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		Salary:      decimal.NewFromInt(50000),
		DaysPresent: 22,
		BankName:    "State Bank",
		BankAccount: "00123456789",
	}

	data, err := renderer.Render(slip, view)
	assert.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output must be a PDF document")
}
