package job

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Title       string     `gorm:"type:varchar(200);not null"`
	Description string     `gorm:"type:text"`
	ClosingDate *time.Time `gorm:"type:date"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive is a projection of the closing date against a reference
// day. It is computed on every read and never stored.
func IsActive(closingDate *time.Time, today time.Time) bool {
	if closingDate == nil {
		return true
	}
	y, m, d := today.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, today.Location())
	return !closingDate.Before(startOfDay)
}
