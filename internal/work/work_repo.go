package work

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=work_repo.go -destination=mock/work_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, w *Work) error
	Update(ctx context.Context, w *Work) error
	FindByID(ctx context.Context, id string) (*Work, error)
	FindAll(ctx context.Context) ([]Work, error)
	FindByEmployee(ctx context.Context, employeeID string) ([]Work, error)
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

func (r *repository) Create(ctx context.Context, w *Work) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *repository) Update(ctx context.Context, w *Work) error {
	return r.db.WithContext(ctx).Save(w).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Work, error) {
	var w Work
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&w, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Work, error) {
	var items []Work
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Order("assigned_date DESC").
		Find(&items).Error
	return items, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID string) ([]Work, error) {
	var items []Work
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("assigned_date DESC").
		Find(&items).Error
	return items, err
}
