package work

import (
	"context"
	"database/sql"
	"errors"
	"time"

	employeeerrors "neb-hris/internal/employee/errors"
	"neb-hris/internal/shared/contextutil"
	workerrors "neb-hris/internal/work/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Upload carries an optional multipart attachment into the service.
type Upload struct {
	FileName string
	Data     []byte
}

//go:generate mockgen -source=work_service.go -destination=mock/work_service_mock.go -package=mock
type Service interface {
	Assign(ctx context.Context, req AssignWorkRequest, attachment *Upload) (WorkResponse, error)
	GetAll(ctx context.Context) ([]WorkResponse, error)
	GetByID(ctx context.Context, id string) (WorkResponse, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]WorkResponse, error)
	UpdateStatus(ctx context.Context, id, status string) (WorkResponse, error)
	SubmitReport(ctx context.Context, id string, req SubmitReportRequest, attachment *Upload) (WorkResponse, error)
	DailyReport(ctx context.Context, date time.Time) ([]byte, error)
}

type service struct {
	db          *sql.DB
	repo        Repository
	attachments AttachmentStore
	reports     ReportRenderer
	logger      *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	attachments AttachmentStore,
	reports ReportRenderer,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("work.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("work.service")
	}
	return &service{
		db:          db,
		repo:        repo,
		attachments: attachments,
		reports:     reports,
		logger:      l,
	}
}

// allowed forward transitions; REPORTED is reached through SubmitReport.
var statusTransitions = map[string][]string{
	StatusAssigned:   {StatusInProgress, StatusCompleted},
	StatusInProgress: {StatusCompleted},
	StatusCompleted:  {},
	StatusReported:   {},
}

func (s *service) Assign(ctx context.Context, req AssignWorkRequest, attachment *Upload) (WorkResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("assign work requested",
		zap.String("request_id", rid),
		zap.String("employee_id", req.EmployeeID),
	)

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return WorkResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	// Attachment validation runs before anything is written.
	if attachment != nil {
		if err := ValidateAttachment(attachment.FileName, attachment.Data); err != nil {
			return WorkResponse{}, err
		}
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		d, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return WorkResponse{}, workerrors.ErrInvalidDueDate
		}
		dueDate = &d
	}

	w := &Work{
		ID:           uuid.New(),
		EmployeeID:   employeeID,
		Title:        req.Title,
		Description:  req.Description,
		AssignedDate: time.Now().Truncate(24 * time.Hour),
		DueDate:      dueDate,
		Status:       StatusAssigned,
	}

	if attachment != nil {
		path, err := s.attachments.Save("assignments", w.ID.String(), attachment.FileName, attachment.Data)
		if err != nil {
			s.logger.Error("assign work attachment save failed", zap.Error(err))
			return WorkResponse{}, err
		}
		w.AssignmentAttachment = path
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WorkResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, w); err != nil {
		s.logger.Error("assign work persist failed", zap.Error(err))
		return WorkResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return WorkResponse{}, err
	}

	s.logger.Info("assign work success",
		zap.String("request_id", rid),
		zap.String("work_id", w.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)

	return mapToResponse(*w), nil
}

func (s *service) GetAll(ctx context.Context) ([]WorkResponse, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) GetByID(ctx context.Context, id string) (WorkResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return WorkResponse{}, workerrors.ErrInvalidWorkID
	}

	w, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WorkResponse{}, workerrors.ErrWorkNotFound
		}
		return WorkResponse{}, err
	}
	return mapToResponse(*w), nil
}

func (s *service) ListByEmployee(ctx context.Context, employeeID string) ([]WorkResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	items, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(items), nil
}

func (s *service) UpdateStatus(ctx context.Context, id, status string) (WorkResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return WorkResponse{}, workerrors.ErrInvalidWorkID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WorkResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	w, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WorkResponse{}, workerrors.ErrWorkNotFound
		}
		return WorkResponse{}, err
	}

	if err := s.requireAssignee(ctx, w); err != nil {
		return WorkResponse{}, err
	}

	if !transitionAllowed(w.Status, status) {
		return WorkResponse{}, workerrors.ErrInvalidStatus
	}
	w.Status = status

	if err := qtx.Update(ctx, w); err != nil {
		return WorkResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return WorkResponse{}, err
	}

	s.logger.Info("update work status success",
		zap.String("work_id", id),
		zap.String("status", status),
	)
	return mapToResponse(*w), nil
}

func (s *service) SubmitReport(ctx context.Context, id string, req SubmitReportRequest, attachment *Upload) (WorkResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return WorkResponse{}, workerrors.ErrInvalidWorkID
	}

	if attachment != nil {
		if err := ValidateAttachment(attachment.FileName, attachment.Data); err != nil {
			return WorkResponse{}, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WorkResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	w, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return WorkResponse{}, workerrors.ErrWorkNotFound
		}
		return WorkResponse{}, err
	}

	if err := s.requireAssignee(ctx, w); err != nil {
		return WorkResponse{}, err
	}

	if attachment != nil {
		path, err := s.attachments.Save("reports", w.ID.String(), attachment.FileName, attachment.Data)
		if err != nil {
			s.logger.Error("submit report attachment save failed", zap.Error(err))
			return WorkResponse{}, err
		}
		w.ReportAttachment = path
	}

	now := time.Now().Truncate(24 * time.Hour)
	w.Report = req.Report
	w.SubmittedDate = &now
	w.Status = StatusReported

	if err := qtx.Update(ctx, w); err != nil {
		return WorkResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return WorkResponse{}, err
	}

	s.logger.Info("submit work report success", zap.String("work_id", id))
	return mapToResponse(*w), nil
}

func (s *service) DailyReport(ctx context.Context, date time.Time) ([]byte, error) {
	items, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	day := date.Truncate(24 * time.Hour)
	var relevant []Work
	for _, w := range items {
		if sameDay(w.AssignedDate, day) || (w.SubmittedDate != nil && sameDay(*w.SubmittedDate, day)) {
			relevant = append(relevant, w)
		}
	}

	return s.reports.RenderDaily(day, relevant)
}

// requireAssignee rejects status and report mutations by anyone other
// than the assigned employee. The actor id comes from the request
// context set by the auth middleware.
func (s *service) requireAssignee(ctx context.Context, w *Work) error {
	actor := contextutil.GetUserID(ctx)
	if actor != "" && actor != w.EmployeeID.String() {
		s.logger.Warn("work mutation rejected, not the assignee",
			zap.String("work_id", w.ID.String()),
			zap.String("actor_id", actor),
		)
		return workerrors.ErrNotAssignee
	}
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func transitionAllowed(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func mapToResponse(w Work) WorkResponse {
	resp := WorkResponse{
		ID:                   w.ID.String(),
		EmployeeID:           w.EmployeeID.String(),
		Title:                w.Title,
		Description:          w.Description,
		AssignedDate:         w.AssignedDate.Format("2006-01-02"),
		Status:               w.Status,
		Report:               w.Report,
		AssignmentAttachment: w.AssignmentAttachment,
		ReportAttachment:     w.ReportAttachment,
	}
	if w.Employee != nil {
		resp.EmployeeName = w.Employee.FirstName + " " + w.Employee.LastName
	}
	if w.DueDate != nil {
		resp.DueDate = w.DueDate.Format("2006-01-02")
	}
	if w.SubmittedDate != nil {
		resp.SubmittedDate = w.SubmittedDate.Format("2006-01-02")
	}
	return resp
}

func mapToListResponse(items []Work) []WorkResponse {
	resp := make([]WorkResponse, len(items))
	for i, w := range items {
		resp[i] = mapToResponse(w)
	}
	return resp
}
