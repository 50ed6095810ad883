package application

import (
	"time"

	"github.com/google/uuid"

	"neb-hris/internal/job"
)

const (
	StatusOtpSent   = "OTP_SENT"
	StatusSubmitted = "SUBMITTED"
)

type JobApplication struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	JobID uuid.UUID `gorm:"type:uuid;not null;index:idx_application_job"`
	Job   *job.Job  `gorm:"foreignKey:JobID;references:ID"`

	FirstName  string `gorm:"type:varchar(100);not null"`
	LastName   string `gorm:"type:varchar(100)"`
	Email      string `gorm:"type:varchar(255);not null;uniqueIndex:uq_application_email"`
	Phone      string `gorm:"type:varchar(30)"`
	ResumePath string `gorm:"type:varchar(512)"`

	Status    string    `gorm:"type:varchar(20);not null;default:'SUBMITTED'"`
	AppliedAt time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
