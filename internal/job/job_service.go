package job

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	joberrors "neb-hris/internal/job/errors"
	"neb-hris/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const JobDetailKeyPrefix = "jobs:detail:"

func GetJobDetailKey(id string) string {
	return JobDetailKeyPrefix + id
}

// cachedJob is the cache representation. The active flag is derived
// from the closing date at read time, never cached.
type cachedJob struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	ClosingDate *time.Time `json:"closing_date"`
}

//go:generate mockgen -source=job_service.go -destination=mock/job_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateJobRequest) (JobResponse, error)
	Update(ctx context.Context, id string, req UpdateJobRequest) (JobResponse, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]JobResponse, error)
	GetByID(ctx context.Context, id string) (JobResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("job.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("job.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateJobRequest) (JobResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create job requested",
		zap.String("request_id", rid),
		zap.String("title", req.Title),
	)

	closingDate, err := parseClosingDate(req.ClosingDate)
	if err != nil {
		return JobResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return JobResponse{}, err
	}
	defer tx.Rollback()

	j := &Job{
		ID:          uuid.New(),
		Title:       req.Title,
		Description: req.Description,
		ClosingDate: closingDate,
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, j); err != nil {
		s.logger.Error("create job persist failed", zap.Error(err))
		return JobResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return JobResponse{}, err
	}

	s.logger.Info("create job success",
		zap.String("request_id", rid),
		zap.String("job_id", j.ID.String()),
	)
	return mapToResponse(*j, time.Now()), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateJobRequest) (JobResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return JobResponse{}, joberrors.ErrInvalidJobID
	}

	closingDate, err := parseClosingDate(req.ClosingDate)
	if err != nil {
		return JobResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return JobResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	j, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return JobResponse{}, joberrors.ErrJobNotFound
		}
		return JobResponse{}, err
	}

	j.Title = req.Title
	j.Description = req.Description
	j.ClosingDate = closingDate

	if err := qtx.Update(ctx, j); err != nil {
		return JobResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return JobResponse{}, err
	}

	s.invalidateCache(ctx, id)
	s.logger.Info("update job success", zap.String("job_id", id))
	return mapToResponse(*j, time.Now()), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return joberrors.ErrInvalidJobID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return joberrors.ErrJobNotFound
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateCache(ctx, id)
	s.logger.Info("delete job success", zap.String("job_id", id))
	return nil
}

func (s *service) GetAll(ctx context.Context) ([]JobResponse, error) {
	jobs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	resp := make([]JobResponse, len(jobs))
	for i, j := range jobs {
		resp[i] = mapToResponse(j, now)
	}
	return resp, nil
}

// GetByID serves the public career page. Postings change rarely, so
// the row is cached in Redis and cache misses are collapsed with
// singleflight.
func (s *service) GetByID(ctx context.Context, id string) (JobResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return JobResponse{}, joberrors.ErrInvalidJobID
	}

	cacheKey := GetJobDetailKey(id)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cj cachedJob
			if json.Unmarshal([]byte(cached), &cj) == nil {
				return projectCached(cj, time.Now()), nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		j, err := s.repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, joberrors.ErrJobNotFound
			}
			return nil, err
		}

		cj := cachedJob{
			ID:          j.ID.String(),
			Title:       j.Title,
			Description: j.Description,
			ClosingDate: j.ClosingDate,
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(cj); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, 10*time.Minute)
			}
		}

		return cj, nil
	})
	if err != nil {
		return JobResponse{}, err
	}

	return projectCached(v.(cachedJob), time.Now()), nil
}

func (s *service) invalidateCache(ctx context.Context, id string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, GetJobDetailKey(id)).Err(); err != nil {
		s.logger.Warn("job cache invalidation failed",
			zap.String("job_id", id),
			zap.Error(err),
		)
	}
}

func parseClosingDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, joberrors.ErrInvalidClosingDate
	}
	return &d, nil
}

func mapToResponse(j Job, now time.Time) JobResponse {
	resp := JobResponse{
		ID:          j.ID.String(),
		Title:       j.Title,
		Description: j.Description,
		IsActive:    IsActive(j.ClosingDate, now),
	}
	if j.ClosingDate != nil {
		resp.ClosingDate = j.ClosingDate.Format("2006-01-02")
	}
	return resp
}

func projectCached(cj cachedJob, now time.Time) JobResponse {
	resp := JobResponse{
		ID:          cj.ID,
		Title:       cj.Title,
		Description: cj.Description,
		IsActive:    IsActive(cj.ClosingDate, now),
	}
	if cj.ClosingDate != nil {
		resp.ClosingDate = cj.ClosingDate.Format("2006-01-02")
	}
	return resp
}
