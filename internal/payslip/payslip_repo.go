package payslip

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payslip_repo.go -destination=mock/payslip_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, slip *Payslip) error
	Update(ctx context.Context, slip *Payslip) error
	FindByID(ctx context.Context, id string) (*Payslip, error)
	ListForEmployee(ctx context.Context, employeeID string) ([]Payslip, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, slip *Payslip) error {
	return r.db.WithContext(ctx).Create(slip).Error
}

func (r *repository) Update(ctx context.Context, slip *Payslip) error {
	return r.db.WithContext(ctx).Save(slip).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payslip, error) {
	var slip Payslip
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&slip, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &slip, nil
}

func (r *repository) ListForEmployee(ctx context.Context, employeeID string) ([]Payslip, error) {
	var slips []Payslip
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("generated_at DESC").
		Find(&slips).Error
	return slips, err
}
