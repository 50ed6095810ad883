package application

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"

	applicationerrors "neb-hris/internal/application/errors"
	"neb-hris/internal/events"
	"neb-hris/internal/job"
	joberrors "neb-hris/internal/job/errors"
	"neb-hris/internal/mailer"
	"neb-hris/internal/messaging/kafka"
	"neb-hris/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Upload carries an optional resume file into Apply.
type Upload struct {
	FileName string
	Data     []byte
}

//go:generate mockgen -source=application_service.go -destination=mock/application_service_mock.go -package=mock
type Service interface {
	// Apply issues a 6-digit code to the applicant's email. The
	// application row is not persisted until the code is verified.
	Apply(ctx context.Context, req ApplyRequest, resume *Upload) (ApplyResponse, error)
	// Verify consumes the pending code and persists the application.
	Verify(ctx context.Context, req VerifyOtpRequest) (ApplicationResponse, error)
	GetAll(ctx context.Context) ([]ApplicationResponse, error)
	ListByJob(ctx context.Context, jobID string) ([]ApplicationResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	jobRepo    job.Repository
	otpStore   OtpStore
	resumes    ResumeStore
	mail       mailer.Mailer
	outboxRepo kafka.OutboxRepository
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	jobRepo job.Repository,
	otpStore OtpStore,
	resumes ResumeStore,
	mail mailer.Mailer,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("application.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("application.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		jobRepo:    jobRepo,
		otpStore:   otpStore,
		resumes:    resumes,
		mail:       mail,
		outboxRepo: outboxRepo,
		logger:     l,
	}
}

// generateOtp returns a uniform random 6-digit code with leading
// zeros preserved.
func generateOtp() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func (s *service) Apply(ctx context.Context, req ApplyRequest, resume *Upload) (ApplyResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("apply requested",
		zap.String("request_id", rid),
		zap.String("job_id", req.JobID),
		zap.String("email", req.Email),
	)

	if resume != nil {
		if err := ValidateResume(resume.FileName, resume.Data); err != nil {
			return ApplyResponse{}, err
		}
	}

	if _, err := s.jobRepo.FindByID(ctx, req.JobID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ApplyResponse{}, joberrors.ErrJobNotFound
		}
		return ApplyResponse{}, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return ApplyResponse{}, err
	}
	if exists {
		s.logger.Warn("apply rejected, email already applied", zap.String("email", req.Email))
		return ApplyResponse{}, applicationerrors.ErrApplicationExists
	}

	var resumePath string
	if resume != nil {
		resumePath, err = s.resumes.Save(req.Email, resume.FileName, resume.Data)
		if err != nil {
			s.logger.Error("apply resume save failed", zap.Error(err))
			return ApplyResponse{}, err
		}
	}

	code, err := generateOtp()
	if err != nil {
		return ApplyResponse{}, err
	}

	pending := PendingApplication{
		Code:       code,
		JobID:      req.JobID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		ResumePath: resumePath,
		CreatedAt:  time.Now(),
	}
	if err := s.otpStore.Put(ctx, req.Email, pending); err != nil {
		s.logger.Error("apply otp store failed", zap.Error(err))
		return ApplyResponse{}, err
	}

	if err := s.mail.SendOtp(req.Email, code); err != nil {
		return ApplyResponse{}, err
	}

	s.logger.Info("apply otp sent",
		zap.String("request_id", rid),
		zap.String("job_id", req.JobID),
		zap.String("email", req.Email),
	)

	return ApplyResponse{
		Email:   req.Email,
		Status:  StatusOtpSent,
		Message: "A verification code has been sent to your email address.",
	}, nil
}

func (s *service) Verify(ctx context.Context, req VerifyOtpRequest) (ApplicationResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	pending, err := s.otpStore.Get(ctx, req.Email)
	if err != nil {
		return ApplicationResponse{}, err
	}
	if pending == nil || pending.Code != req.Code {
		s.logger.Warn("verify otp rejected", zap.String("email", req.Email))
		return ApplicationResponse{}, applicationerrors.ErrInvalidOrExpiredOtp
	}

	jobID, err := uuid.Parse(pending.JobID)
	if err != nil {
		return ApplicationResponse{}, joberrors.ErrInvalidJobID
	}

	app := &JobApplication{
		ID:         uuid.New(),
		JobID:      jobID,
		FirstName:  pending.FirstName,
		LastName:   pending.LastName,
		Email:      pending.Email,
		Phone:      pending.Phone,
		ResumePath: pending.ResumePath,
		Status:     StatusSubmitted,
		AppliedAt:  time.Now(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ApplicationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, app); err != nil {
		s.logger.Error("verify otp persist failed", zap.Error(err))
		return ApplicationResponse{}, err
	}

	if s.outboxRepo != nil {
		event := events.ApplicationSubmittedEvent{
			EventType:     "application.submitted",
			ApplicationID: app.ID.String(),
			JobID:         app.JobID.String(),
			Email:         app.Email,
			OccurredAt:    time.Now(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return ApplicationResponse{}, err
		}

		outboxRepo := s.outboxRepo.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "application",
			AggregateID:   app.ID.String(),
			EventType:     event.EventType,
			Topic:         events.ApplicationSubmittedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("verify otp outbox persist failed", zap.Error(err))
			return ApplicationResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return ApplicationResponse{}, err
	}

	// The code is consumed only once the row is committed; a persist
	// failure leaves it valid for a retry until the TTL fires.
	if err := s.otpStore.Delete(ctx, req.Email); err != nil {
		s.logger.Warn("verify otp cleanup failed",
			zap.String("email", req.Email),
			zap.Error(err),
		)
	}

	jobTitle := ""
	if j, err := s.jobRepo.FindByID(ctx, pending.JobID); err == nil {
		jobTitle = j.Title
	}
	if err := s.mail.SendApplicationConfirmation(app.Email, jobTitle); err != nil {
		// The application is already persisted, so a confirmation
		// failure is logged but not surfaced to the applicant.
		s.logger.Warn("verify otp confirmation mail failed",
			zap.String("email", app.Email),
			zap.Error(err),
		)
	}

	s.logger.Info("application submitted",
		zap.String("request_id", rid),
		zap.String("application_id", app.ID.String()),
		zap.String("job_id", app.JobID.String()),
	)

	resp := mapToResponse(*app)
	resp.JobTitle = jobTitle
	return resp, nil
}

func (s *service) GetAll(ctx context.Context) ([]ApplicationResponse, error) {
	apps, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(apps), nil
}

func (s *service) ListByJob(ctx context.Context, jobID string) ([]ApplicationResponse, error) {
	if _, err := uuid.Parse(jobID); err != nil {
		return nil, joberrors.ErrInvalidJobID
	}

	apps, err := s.repo.FindByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(apps), nil
}

func mapToResponse(app JobApplication) ApplicationResponse {
	resp := ApplicationResponse{
		ID:         app.ID.String(),
		JobID:      app.JobID.String(),
		FirstName:  app.FirstName,
		LastName:   app.LastName,
		Email:      app.Email,
		Phone:      app.Phone,
		ResumePath: app.ResumePath,
		Status:     app.Status,
		AppliedAt:  app.AppliedAt.Format(time.RFC3339),
	}
	if app.Job != nil {
		resp.JobTitle = app.Job.Title
	}
	return resp
}

func mapToListResponse(apps []JobApplication) []ApplicationResponse {
	resp := make([]ApplicationResponse, len(apps))
	for i, app := range apps {
		resp[i] = mapToResponse(app)
	}
	return resp
}
