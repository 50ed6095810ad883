package work

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusAssigned   = "ASSIGNED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusReported   = "REPORTED"
)

type Work struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID     `gorm:"type:uuid;not null;index:idx_work_employee"`
	Employee   *WorkEmployee `gorm:"foreignKey:EmployeeID;references:ID"`

	Title       string `gorm:"type:varchar(200);not null"`
	Description string `gorm:"type:text"`

	AssignedDate  time.Time  `gorm:"type:date;not null"`
	DueDate       *time.Time `gorm:"type:date"`
	SubmittedDate *time.Time `gorm:"type:date"`

	Status string `gorm:"type:varchar(20);not null;default:'ASSIGNED';index"`
	Report string `gorm:"type:text"`

	AssignmentAttachment string `gorm:"type:varchar(512)"`
	ReportAttachment     string `gorm:"type:varchar(512)"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type WorkEmployee struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName  string    `gorm:"column:first_name"`
	LastName   string    `gorm:"column:last_name"`
	CardNumber string    `gorm:"column:card_number"`
}

func (WorkEmployee) TableName() string {
	return "employees"
}
