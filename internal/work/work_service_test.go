package work_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"neb-hris/internal/shared/contextutil"
	"neb-hris/internal/work"
	workerrors "neb-hris/internal/work/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeWorkRepository struct {
	createFn         func(ctx context.Context, w *work.Work) error
	updateFn         func(ctx context.Context, w *work.Work) error
	findByIDFn       func(ctx context.Context, id string) (*work.Work, error)
	findAllFn        func(ctx context.Context) ([]work.Work, error)
	findByEmployeeFn func(ctx context.Context, employeeID string) ([]work.Work, error)
}

func (f *fakeWorkRepository) WithTx(tx *sql.Tx) work.Repository { return f }

func (f *fakeWorkRepository) Create(ctx context.Context, w *work.Work) error {
	if f.createFn != nil {
		return f.createFn(ctx, w)
	}
	return nil
}

func (f *fakeWorkRepository) Update(ctx context.Context, w *work.Work) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, w)
	}
	return nil
}

func (f *fakeWorkRepository) FindByID(ctx context.Context, id string) (*work.Work, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeWorkRepository) FindAll(ctx context.Context) ([]work.Work, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeWorkRepository) FindByEmployee(ctx context.Context, employeeID string) ([]work.Work, error) {
	if f.findByEmployeeFn != nil {
		return f.findByEmployeeFn(ctx, employeeID)
	}
	return nil, nil
}

type fakeAttachmentStore struct {
	saveFn func(kind, workID, fileName string, data []byte) (string, error)
	saved  []string
}

func (f *fakeAttachmentStore) Save(kind, workID, fileName string, data []byte) (string, error) {
	f.saved = append(f.saved, kind+"/"+fileName)
	if f.saveFn != nil {
		return f.saveFn(kind, workID, fileName, data)
	}
	return "/tmp/work/" + kind + "/" + workID + "_" + fileName, nil
}

type fakeReportRenderer struct {
	renderFn func(date time.Time, items []work.Work) ([]byte, error)
}

func (f *fakeReportRenderer) RenderDaily(date time.Time, items []work.Work) ([]byte, error) {
	if f.renderFn != nil {
		return f.renderFn(date, items)
	}
	return []byte("%PDF-1.4"), nil
}

type workServiceDeps struct {
	db          *sql.DB
	sqlMock     sqlmock.Sqlmock
	service     work.Service
	repo        *fakeWorkRepository
	attachments *fakeAttachmentStore
	reports     *fakeReportRenderer
}

func setupWorkServiceTest(t *testing.T) workServiceDeps {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := &fakeWorkRepository{}
	attachments := &fakeAttachmentStore{}
	reports := &fakeReportRenderer{}

	svc := work.NewService(db, repo, attachments, reports)

	return workServiceDeps{
		db:          db,
		sqlMock:     mock,
		service:     svc,
		repo:        repo,
		attachments: attachments,
		reports:     reports,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestWorkService_Assign(t *testing.T) {
	t.Run("creates an assigned task", func(t *testing.T) {
		deps := setupWorkServiceTest(t)

		var created *work.Work
		deps.repo.createFn = func(ctx context.Context, w *work.Work) error {
			created = w
			return nil
		}

		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.Assign(context.Background(), work.AssignWorkRequest{
			EmployeeID:  uuid.NewString(),
			Title:       "Quarterly audit",
			Description: "Reconcile attendance records",
			DueDate:     "2026-09-30",
		}, nil)
		assert.NoError(t, err)
		assert.Equal(t, work.StatusAssigned, resp.Status)
		assert.Equal(t, "2026-09-30", resp.DueDate)

		assert.NotNil(t, created)
		assert.Equal(t, work.StatusAssigned, created.Status)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("pdf attachment is stored", func(t *testing.T) {
		deps := setupWorkServiceTest(t)

		expectTx(t, deps.sqlMock, true)

		attachment := &work.Upload{FileName: "brief.pdf", Data: []byte("%PDF-1.4")}
		resp, err := deps.service.Assign(context.Background(), work.AssignWorkRequest{
			EmployeeID: uuid.NewString(),
			Title:      "Quarterly audit",
		}, attachment)
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AssignmentAttachment)
		assert.Equal(t, []string{"assignments/brief.pdf"}, deps.attachments.saved)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("non-pdf attachment leaves no trace", func(t *testing.T) {
		deps := setupWorkServiceTest(t)

		createCalled := false
		deps.repo.createFn = func(ctx context.Context, w *work.Work) error {
			createCalled = true
			return nil
		}

		attachment := &work.Upload{FileName: "brief.docx", Data: []byte("PK\x03\x04")}
		_, err := deps.service.Assign(context.Background(), work.AssignWorkRequest{
			EmployeeID: uuid.NewString(),
			Title:      "Quarterly audit",
		}, attachment)
		assert.ErrorIs(t, err, workerrors.ErrUnsupportedFileType)
		assert.False(t, createCalled)
		assert.Empty(t, deps.attachments.saved)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("pdf extension with foreign content rejected", func(t *testing.T) {
		deps := setupWorkServiceTest(t)

		attachment := &work.Upload{FileName: "brief.pdf", Data: []byte("MZ")}
		_, err := deps.service.Assign(context.Background(), work.AssignWorkRequest{
			EmployeeID: uuid.NewString(),
			Title:      "Quarterly audit",
		}, attachment)
		assert.ErrorIs(t, err, workerrors.ErrUnsupportedFileType)
	})

	t.Run("malformed due date", func(t *testing.T) {
		deps := setupWorkServiceTest(t)

		_, err := deps.service.Assign(context.Background(), work.AssignWorkRequest{
			EmployeeID: uuid.NewString(),
			Title:      "Quarterly audit",
			DueDate:    "30/09/2026",
		}, nil)
		assert.ErrorIs(t, err, workerrors.ErrInvalidDueDate)
	})
}

func TestWorkService_UpdateStatus(t *testing.T) {
	existing := func(status string) func(ctx context.Context, id string) (*work.Work, error) {
		return func(ctx context.Context, id string) (*work.Work, error) {
			return &work.Work{
				ID:           uuid.New(),
				EmployeeID:   uuid.New(),
				Title:        "Quarterly audit",
				AssignedDate: time.Now(),
				Status:       status,
			}, nil
		}
	}

	t.Run("assigned to in progress", func(t *testing.T) {
		deps := setupWorkServiceTest(t)
		deps.repo.findByIDFn = existing(work.StatusAssigned)

		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.UpdateStatus(context.Background(), uuid.NewString(), work.StatusInProgress)
		assert.NoError(t, err)
		assert.Equal(t, work.StatusInProgress, resp.Status)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("completed cannot move back", func(t *testing.T) {
		deps := setupWorkServiceTest(t)
		deps.repo.findByIDFn = existing(work.StatusCompleted)

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.UpdateStatus(context.Background(), uuid.NewString(), work.StatusInProgress)
		assert.ErrorIs(t, err, workerrors.ErrInvalidStatus)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("same status is a no-op transition", func(t *testing.T) {
		deps := setupWorkServiceTest(t)
		deps.repo.findByIDFn = existing(work.StatusInProgress)

		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.UpdateStatus(context.Background(), uuid.NewString(), work.StatusInProgress)
		assert.NoError(t, err)
		assert.Equal(t, work.StatusInProgress, resp.Status)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown task", func(t *testing.T) {
		deps := setupWorkServiceTest(t)

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.UpdateStatus(context.Background(), uuid.NewString(), work.StatusCompleted)
		assert.ErrorIs(t, err, workerrors.ErrWorkNotFound)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("assignee may update their own task", func(t *testing.T) {
		deps := setupWorkServiceTest(t)

		assignee := uuid.New()
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*work.Work, error) {
			return &work.Work{ID: uuid.New(), EmployeeID: assignee, Status: work.StatusAssigned, AssignedDate: time.Now()}, nil
		}

		expectTx(t, deps.sqlMock, true)

		ctx := contextutil.WithUserID(context.Background(), assignee.String())
		resp, err := deps.service.UpdateStatus(ctx, uuid.NewString(), work.StatusInProgress)
		assert.NoError(t, err)
		assert.Equal(t, work.StatusInProgress, resp.Status)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("someone else's task is forbidden", func(t *testing.T) {
		deps := setupWorkServiceTest(t)

		deps.repo.findByIDFn = existing(work.StatusAssigned)

		updated := false
		deps.repo.updateFn = func(ctx context.Context, w *work.Work) error {
			updated = true
			return nil
		}

		expectTx(t, deps.sqlMock, false)

		ctx := contextutil.WithUserID(context.Background(), uuid.NewString())
		_, err := deps.service.UpdateStatus(ctx, uuid.NewString(), work.StatusInProgress)
		assert.ErrorIs(t, err, workerrors.ErrNotAssignee)
		assert.False(t, updated)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestWorkService_SubmitReport(t *testing.T) {
	t.Run("marks the task reported", func(t *testing.T) {
		deps := setupWorkServiceTest(t)

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*work.Work, error) {
			return &work.Work{
				ID:           uuid.New(),
				EmployeeID:   uuid.New(),
				Title:        "Quarterly audit",
				AssignedDate: time.Now(),
				Status:       work.StatusInProgress,
			}, nil
		}

		var updated *work.Work
		deps.repo.updateFn = func(ctx context.Context, w *work.Work) error {
			updated = w
			return nil
		}

		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.SubmitReport(context.Background(), uuid.NewString(), work.SubmitReportRequest{
			Report: "All records reconciled.",
		}, nil)
		assert.NoError(t, err)
		assert.Equal(t, work.StatusReported, resp.Status)
		assert.Equal(t, "All records reconciled.", resp.Report)
		assert.NotEmpty(t, resp.SubmittedDate)

		assert.NotNil(t, updated)
		assert.NotNil(t, updated.SubmittedDate)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("someone else's task is forbidden", func(t *testing.T) {
		deps := setupWorkServiceTest(t)

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*work.Work, error) {
			return &work.Work{
				ID:           uuid.New(),
				EmployeeID:   uuid.New(),
				Status:       work.StatusInProgress,
				AssignedDate: time.Now(),
			}, nil
		}

		updated := false
		deps.repo.updateFn = func(ctx context.Context, w *work.Work) error {
			updated = true
			return nil
		}

		expectTx(t, deps.sqlMock, false)

		ctx := contextutil.WithUserID(context.Background(), uuid.NewString())
		_, err := deps.service.SubmitReport(ctx, uuid.NewString(), work.SubmitReportRequest{
			Report: "not my task",
		}, nil)
		assert.ErrorIs(t, err, workerrors.ErrNotAssignee)
		assert.False(t, updated)
		assert.Empty(t, deps.attachments.saved)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("non-pdf report attachment rejected before the row changes", func(t *testing.T) {
		deps := setupWorkServiceTest(t)

		findCalled := false
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*work.Work, error) {
			findCalled = true
			return nil, gorm.ErrRecordNotFound
		}

		attachment := &work.Upload{FileName: "report.txt", Data: []byte("plain text")}
		_, err := deps.service.SubmitReport(context.Background(), uuid.NewString(), work.SubmitReportRequest{
			Report: "done",
		}, attachment)
		assert.ErrorIs(t, err, workerrors.ErrUnsupportedFileType)
		assert.False(t, findCalled)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestWorkService_DailyReport(t *testing.T) {
	deps := setupWorkServiceTest(t)

	day := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	submitted := day

	deps.repo.findAllFn = func(ctx context.Context) ([]work.Work, error) {
		return []work.Work{
			{ID: uuid.New(), Title: "Assigned today", AssignedDate: day, Status: work.StatusAssigned},
			{ID: uuid.New(), Title: "Submitted today", AssignedDate: day.AddDate(0, 0, -3), SubmittedDate: &submitted, Status: work.StatusReported},
			{ID: uuid.New(), Title: "Unrelated", AssignedDate: day.AddDate(0, 0, -10), Status: work.StatusCompleted},
		}, nil
	}

	var rendered []work.Work
	deps.reports.renderFn = func(date time.Time, items []work.Work) ([]byte, error) {
		rendered = items
		return []byte("%PDF-1.4"), nil
	}

	data, err := deps.service.DailyReport(context.Background(), day)
	assert.NoError(t, err)
	assert.NotEmpty(t, data)

	assert.Len(t, rendered, 2)
	assert.Equal(t, "Assigned today", rendered[0].Title)
	assert.Equal(t, "Submitted today", rendered[1].Title)
}
