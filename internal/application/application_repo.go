package application

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=application_repo.go -destination=mock/application_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, app *JobApplication) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByID(ctx context.Context, id string) (*JobApplication, error)
	FindAll(ctx context.Context) ([]JobApplication, error)
	FindByJob(ctx context.Context, jobID string) ([]JobApplication, error)
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

func (r *repository) Create(ctx context.Context, app *JobApplication) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&JobApplication{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*JobApplication, error) {
	var app JobApplication
	err := r.db.WithContext(ctx).
		Preload("Job").
		First(&app, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *repository) FindAll(ctx context.Context) ([]JobApplication, error) {
	var apps []JobApplication
	err := r.db.WithContext(ctx).
		Preload("Job").
		Order("applied_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *repository) FindByJob(ctx context.Context, jobID string) ([]JobApplication, error) {
	var apps []JobApplication
	err := r.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Find(&apps).Error
	return apps, err
}
