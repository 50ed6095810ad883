package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"

	RoleAdmin    = "admin"
	RoleHR       = "hr"
	RoleEmployee = "employee"
)

type Employee struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName  string
	LastName   string
	// Email is unique among active rows only, so a soft-deleted
	// employee's address can be registered again.
	Email      string `gorm:"index:uq_employee_email,unique,where:status = 'active'"`
	Mobile     string
	CardNumber string `gorm:"uniqueIndex:uq_employee_card_number"`

	LoginRole string // admin / hr / employee
	JobRole   string // intern / developer / hr
	Domain    string // Java / .Net / Python
	Gender    string

	JoiningDate time.Time       `gorm:"type:date"`
	Salary      decimal.Decimal `gorm:"type:numeric(12,2)"`
	DaysPresent int
	PaidLeaves  int
	Password    string // bcrypt hash

	// Bank and statutory identifiers
	BankAccountNumber string
	BankName          string
	PfNumber          string
	PanNumber         string
	UanNumber         string
	EpsNumber         string
	EsiNumber         string

	// Soft-delete flag: inactive rows are hidden from lists but kept
	// for payslip and work history.
	Status string `gorm:"type:varchar(10);not null;default:'active';index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
