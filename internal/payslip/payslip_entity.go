package payslip

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Payslip struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID        `gorm:"type:uuid;not null;index:idx_payslip_employee"`
	Employee   *PayslipEmployee `gorm:"foreignKey:EmployeeID;references:ID"`

	// Human-readable month-year label, e.g. "August 2025".
	Period string `gorm:"type:varchar(40);not null"`

	Basic           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Hra             decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Flexi           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Gross           decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PfDeduction     decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ProfessionalTax decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TotalDeductions decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	NetPay          decimal.Decimal `gorm:"type:numeric(12,2);not null"`

	Location        string          `gorm:"type:varchar(120)"`
	Balance         decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	AggDeduction    decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	IncomeUnderHead decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	TaxCredit       decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`

	FileName    string `gorm:"type:varchar(255)"`
	FilePath    string `gorm:"type:varchar(512)"`
	GeneratedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PayslipEmployee is a narrow projection of the employees table used
// for eager loading on download and render.
type PayslipEmployee struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	FirstName   string          `gorm:"column:first_name"`
	LastName    string          `gorm:"column:last_name"`
	CardNumber  string          `gorm:"column:card_number"`
	JoiningDate time.Time       `gorm:"column:joining_date"`
	Salary      decimal.Decimal `gorm:"column:salary"`
	DaysPresent int             `gorm:"column:days_present"`
	BankName    string          `gorm:"column:bank_name"`
	BankAccount string          `gorm:"column:bank_account_number"`
	PfNumber    string          `gorm:"column:pf_number"`
	PanNumber   string          `gorm:"column:pan_number"`
	UanNumber   string          `gorm:"column:uan_number"`
	EpsNumber   string          `gorm:"column:eps_number"`
	EsiNumber   string          `gorm:"column:esi_number"`
}

func (PayslipEmployee) TableName() string {
	return "employees"
}
