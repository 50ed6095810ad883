package employee

import (
	"context"
	"database/sql"

	"neb-hris/internal/shared/scope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindAll(ctx context.Context, excludeRoles []string) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByIDAnyStatus(ctx context.Context, id string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	FindByEmailAndRole(ctx context.Context, email, loginRole string) (*Employee, error)
	Update(ctx context.Context, empl *Employee) error
	SoftDelete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(scope.ActiveOnly).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindAll(ctx context.Context, excludeRoles []string) ([]Employee, error) {
	var empls []Employee
	q := r.db.WithContext(ctx).Scopes(scope.ActiveOnly)
	if len(excludeRoles) > 0 {
		q = q.Where("login_role NOT IN ?", excludeRoles)
	}
	err := q.Order("created_at ASC").Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Scopes(scope.ActiveOnly).
		First(&empl, "id = ?", id).Error
	return &empl, err
}

// FindByIDAnyStatus also sees soft-deleted rows; used when resolving
// historical references (payslips, work records).
func (r *repository) FindByIDAnyStatus(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Scopes(scope.AnyStatus).
		First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Scopes(scope.ActiveOnly).
		First(&empl, "email = ?", email).Error
	return &empl, err
}

func (r *repository) FindByEmailAndRole(ctx context.Context, email, loginRole string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Scopes(scope.ActiveOnly).
		First(&empl, "email = ? AND login_role = ?", email, loginRole).Error
	return &empl, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

// SoftDelete flips the status flag instead of removing the row.
func (r *repository) SoftDelete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(scope.ActiveOnly).
		Where("id = ?", id).
		Update("status", StatusInactive)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
