package scope

import "gorm.io/gorm"

// ActiveOnly restricts a query to employees that have not been
// soft-deleted. Soft-deleted rows stay in the table so historical
// payslips and work records keep their references.
func ActiveOnly(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", "active")
}

// AnyStatus is the explicit opt-out used by lookups that must see
// soft-deleted employees (historical joins, referential checks).
func AnyStatus(db *gorm.DB) *gorm.DB {
	return db
}
