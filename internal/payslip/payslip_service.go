package payslip

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"neb-hris/internal/employee"
	employeeerrors "neb-hris/internal/employee/errors"
	"neb-hris/internal/events"
	"neb-hris/internal/messaging/kafka"
	paysliperrors "neb-hris/internal/payslip/errors"
	"neb-hris/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=payslip_service.go -destination=mock/payslip_service_mock.go -package=mock
type Service interface {
	// Generate computes the breakdown for one employee and period,
	// persists the payslip row, renders the document and attaches the
	// resulting file to the row. Calling it twice for the same
	// employee and period produces a second row pointing at the same
	// overwritten file.
	Generate(ctx context.Context, employeeID, period string) (PayslipResponse, error)
	// GenerateAll runs Generate for every active employee. A failure
	// for one employee is logged and does not stop the rest.
	GenerateAll(ctx context.Context, period string) (BatchResult, error)
	Download(ctx context.Context, payslipID string) (fileName string, data []byte, err error)
	ListForEmployee(ctx context.Context, employeeID string) ([]PayslipResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	store        FileStore
	renderer     Renderer
	policy       SalaryPolicy
	location     string
	outboxRepo   kafka.OutboxRepository
	logger       *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	store FileStore,
	renderer Renderer,
	policy SalaryPolicy,
	location string,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payslip.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		store:        store,
		renderer:     renderer,
		policy:       policy,
		location:     location,
		outboxRepo:   outboxRepo,
		logger:       l,
	}
}

func (s *service) Generate(ctx context.Context, employeeID, period string) (PayslipResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("generate payslip requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("period", period),
	)

	if _, err := uuid.Parse(employeeID); err != nil {
		return PayslipResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if period == "" {
		return PayslipResponse{}, paysliperrors.ErrInvalidPeriod
	}

	empl, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		return PayslipResponse{}, employeeerrors.ErrEmployeeNotFound
	}

	breakdown := s.policy.Compute(empl.Salary)

	slip := &Payslip{
		ID:              uuid.New(),
		EmployeeID:      empl.ID,
		Period:          period,
		Basic:           breakdown.Basic,
		Hra:             breakdown.Hra,
		Flexi:           breakdown.Flexi,
		Gross:           breakdown.Gross,
		PfDeduction:     breakdown.PfDeduction,
		ProfessionalTax: breakdown.ProfessionalTax,
		TotalDeductions: breakdown.TotalDeductions,
		NetPay:          breakdown.NetPay,
		Balance:         breakdown.Balance,
		AggDeduction:    breakdown.AggDeduction,
		IncomeUnderHead: breakdown.IncomeUnderHead,
		TaxCredit:       breakdown.TaxCredit,
		Location:        s.location,
		GeneratedAt:     time.Now(),
	}

	if err := s.repo.Create(ctx, slip); err != nil {
		s.logger.Error("generate payslip persist failed", zap.Error(err))
		return PayslipResponse{}, err
	}

	view := &PayslipEmployee{
		ID:          empl.ID,
		FirstName:   empl.FirstName,
		LastName:    empl.LastName,
		CardNumber:  empl.CardNumber,
		JoiningDate: empl.JoiningDate,
		Salary:      empl.Salary,
		DaysPresent: empl.DaysPresent,
		BankName:    empl.BankName,
		BankAccount: empl.BankAccountNumber,
		PfNumber:    empl.PfNumber,
		PanNumber:   empl.PanNumber,
		UanNumber:   empl.UanNumber,
		EpsNumber:   empl.EpsNumber,
		EsiNumber:   empl.EsiNumber,
	}

	data, err := s.renderer.Render(slip, view)
	if err != nil {
		s.logger.Error("generate payslip render failed",
			zap.String("payslip_id", slip.ID.String()),
			zap.Error(err),
		)
		return PayslipResponse{}, paysliperrors.ErrGenerationFailure
	}

	fileName, filePath, err := s.store.Write(period, empl.CardNumber, data)
	if err != nil {
		s.logger.Error("generate payslip file write failed",
			zap.String("payslip_id", slip.ID.String()),
			zap.Error(err),
		)
		return PayslipResponse{}, paysliperrors.ErrStorageFailure
	}

	slip.FileName = fileName
	slip.FilePath = filePath

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayslipResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Update(ctx, slip); err != nil {
		s.logger.Error("generate payslip attach file failed", zap.Error(err))
		return PayslipResponse{}, err
	}

	if s.outboxRepo != nil {
		event := events.PayslipGeneratedEvent{
			EventType:  "payslip.generated",
			PayslipID:  slip.ID.String(),
			EmployeeID: empl.ID.String(),
			Period:     period,
			OccurredAt: time.Now(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return PayslipResponse{}, err
		}

		outboxRepo := s.outboxRepo.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "payslip",
			AggregateID:   slip.ID.String(),
			EventType:     event.EventType,
			Topic:         events.PayslipGeneratedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("generate payslip outbox persist failed",
				zap.String("payslip_id", slip.ID.String()),
				zap.Error(err),
			)
			return PayslipResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("generate payslip commit failed", zap.String("request_id", rid), zap.Error(err))
		return PayslipResponse{}, err
	}

	s.logger.Info("generate payslip success",
		zap.String("request_id", rid),
		zap.String("payslip_id", slip.ID.String()),
		zap.String("employee_id", empl.ID.String()),
		zap.String("period", period),
		zap.String("file_path", filePath),
	)

	return mapToResponse(*slip), nil
}

func (s *service) GenerateAll(ctx context.Context, period string) (BatchResult, error) {
	if period == "" {
		return BatchResult{}, paysliperrors.ErrInvalidPeriod
	}

	s.logger.Info("payslip batch started", zap.String("period", period))

	empls, err := s.employeeRepo.FindAll(ctx, nil)
	if err != nil {
		s.logger.Error("payslip batch list employees failed", zap.Error(err))
		return BatchResult{}, err
	}

	result := BatchResult{Period: period}
	for _, empl := range empls {
		if _, err := s.Generate(ctx, empl.ID.String(), period); err != nil {
			result.Failed++
			s.logger.Error("payslip batch employee failed",
				zap.String("employee_id", empl.ID.String()),
				zap.String("period", period),
				zap.Error(err),
			)
			continue
		}
		result.Generated++
	}

	s.logger.Info("payslip batch finished",
		zap.String("period", period),
		zap.Int("generated", result.Generated),
		zap.Int("failed", result.Failed),
	)
	return result, nil
}

func (s *service) Download(ctx context.Context, payslipID string) (string, []byte, error) {
	if _, err := uuid.Parse(payslipID); err != nil {
		return "", nil, paysliperrors.ErrInvalidPayslipID
	}

	slip, err := s.repo.FindByID(ctx, payslipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, paysliperrors.ErrPayslipNotFound
		}
		return "", nil, err
	}

	if slip.FilePath == "" {
		return "", nil, paysliperrors.ErrPayslipFileMissing
	}

	data, err := s.store.Read(slip.FilePath)
	if err != nil {
		s.logger.Warn("download payslip file missing",
			zap.String("payslip_id", payslipID),
			zap.String("file_path", slip.FilePath),
			zap.Error(err),
		)
		return "", nil, paysliperrors.ErrPayslipFileMissing
	}

	return slip.FileName, data, nil
}

func (s *service) ListForEmployee(ctx context.Context, employeeID string) ([]PayslipResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	slips, err := s.repo.ListForEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	resp := make([]PayslipResponse, len(slips))
	for i, slip := range slips {
		resp[i] = mapToResponse(slip)
	}
	return resp, nil
}

func mapToResponse(slip Payslip) PayslipResponse {
	return PayslipResponse{
		ID:              slip.ID.String(),
		EmployeeID:      slip.EmployeeID.String(),
		Period:          slip.Period,
		Basic:           slip.Basic.StringFixed(2),
		Hra:             slip.Hra.StringFixed(2),
		Flexi:           slip.Flexi.StringFixed(2),
		Gross:           slip.Gross.StringFixed(2),
		PfDeduction:     slip.PfDeduction.StringFixed(2),
		ProfessionalTax: slip.ProfessionalTax.StringFixed(2),
		TotalDeductions: slip.TotalDeductions.StringFixed(2),
		NetPay:          slip.NetPay.StringFixed(2),
		Location:        slip.Location,
		Balance:         slip.Balance.StringFixed(2),
		AggDeduction:    slip.AggDeduction.StringFixed(2),
		IncomeUnderHead: slip.IncomeUnderHead.StringFixed(2),
		TaxCredit:       slip.TaxCredit.StringFixed(2),
		FileName:        slip.FileName,
		GeneratedAt:     slip.GeneratedAt.Format(time.RFC3339),
	}
}
