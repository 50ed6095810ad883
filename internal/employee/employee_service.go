package employee

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	employeeerrors "neb-hris/internal/employee/errors"
	"neb-hris/internal/shared/contextutil"
	"neb-hris/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, excludeRoles []string) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	GetByEmail(ctx context.Context, email string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	UpdateAttendance(ctx context.Context, id string, daysPresent int) (EmployeeResponse, error)
	UpdateBankDetails(ctx context.Context, id string, req UpdateBankDetailsRequest) (EmployeeResponse, error)
	UpdatePassword(ctx context.Context, id string, req UpdatePasswordRequest) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		logger:  l,
	}
}

func (s *service) Create(
	ctx context.Context,
	req CreateEmployeeRequest,
) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	salary, err := decimal.NewFromString(req.Salary)
	if err != nil || salary.IsNegative() {
		return EmployeeResponse{}, employeeerrors.ErrInvalidSalary
	}
	joiningDate, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("create employee email check failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if exists {
		s.logger.Warn("create employee duplicate email", zap.String("email", req.Email))
		return EmployeeResponse{}, employeeerrors.ErrEmployeeAlreadyExists
	}

	if req.CardNumber == "" {
		nextVal, err := s.counter.GetNextValue(ctx, "card_number")
		if err != nil {
			s.logger.Error("create employee generate card number failed", zap.Error(err))
			return EmployeeResponse{}, err
		}
		req.CardNumber = fmt.Sprintf("NEB-%06d", nextVal)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return EmployeeResponse{}, err
	}

	loginRole := req.LoginRole
	if loginRole == "" {
		loginRole = RoleEmployee
	}

	empl := &Employee{
		ID:                uuid.New(),
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Email:             req.Email,
		Mobile:            req.Mobile,
		CardNumber:        req.CardNumber,
		LoginRole:         loginRole,
		JobRole:           req.JobRole,
		Domain:            req.Domain,
		Gender:            req.Gender,
		JoiningDate:       joiningDate,
		Salary:            salary,
		DaysPresent:       req.DaysPresent,
		PaidLeaves:        req.PaidLeaves,
		Password:          string(hash),
		BankAccountNumber: req.BankAccountNumber,
		BankName:          req.BankName,
		PfNumber:          req.PfNumber,
		PanNumber:         req.PanNumber,
		UanNumber:         req.UanNumber,
		EpsNumber:         req.EpsNumber,
		EsiNumber:         req.EsiNumber,
		Status:            StatusActive,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("card_number", empl.CardNumber),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, excludeRoles []string) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	empls, err := s.repo.FindAll(ctx, excludeRoles)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) GetByEmail(ctx context.Context, email string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.Error("get employee by email failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(
	ctx context.Context,
	id string,
	req UpdateEmployeeRequest,
) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested", zap.String("employee_id", id))

	salary, err := decimal.NewFromString(req.Salary)
	if err != nil || salary.IsNegative() {
		return EmployeeResponse{}, employeeerrors.ErrInvalidSalary
	}
	joiningDate, err := time.Parse("2006-01-02", req.JoiningDate)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidJoiningDate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.FirstName = req.FirstName
	empl.LastName = req.LastName
	empl.Email = req.Email
	empl.Mobile = req.Mobile
	if req.CardNumber != "" {
		empl.CardNumber = req.CardNumber
	}
	if req.LoginRole != "" {
		empl.LoginRole = req.LoginRole
	}
	empl.JobRole = req.JobRole
	empl.Domain = req.Domain
	empl.Gender = req.Gender
	empl.JoiningDate = joiningDate
	empl.Salary = salary
	empl.DaysPresent = req.DaysPresent
	empl.PaidLeaves = req.PaidLeaves
	empl.BankAccountNumber = req.BankAccountNumber
	empl.BankName = req.BankName
	empl.PfNumber = req.PfNumber
	empl.PanNumber = req.PanNumber
	empl.UanNumber = req.UanNumber
	empl.EpsNumber = req.EpsNumber
	empl.EsiNumber = req.EsiNumber

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	s.logger.Debug("delete employee requested", zap.String("employee_id", id))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.SoftDelete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) UpdateAttendance(ctx context.Context, id string, daysPresent int) (EmployeeResponse, error) {
	s.logger.Debug("update attendance requested",
		zap.String("employee_id", id),
		zap.Int("days_present", daysPresent),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.DaysPresent = daysPresent

	if err := qtx.Update(ctx, empl); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("update attendance success", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

func (s *service) UpdateBankDetails(ctx context.Context, id string, req UpdateBankDetailsRequest) (EmployeeResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.BankAccountNumber = req.BankAccountNumber
	empl.BankName = req.BankName
	if req.PfNumber != "" {
		empl.PfNumber = req.PfNumber
	}
	if req.PanNumber != "" {
		empl.PanNumber = req.PanNumber
	}
	if req.UanNumber != "" {
		empl.UanNumber = req.UanNumber
	}
	if req.EpsNumber != "" {
		empl.EpsNumber = req.EpsNumber
	}
	if req.EsiNumber != "" {
		empl.EsiNumber = req.EsiNumber
	}

	if err := qtx.Update(ctx, empl); err != nil {
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeResponse{}, err
	}

	s.logger.Info("update bank details success", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

func (s *service) UpdatePassword(ctx context.Context, id string, req UpdatePasswordRequest) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(empl.Password), []byte(req.OldPassword)); err != nil {
		return employeeerrors.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	empl.Password = string(hash)

	if err := qtx.Update(ctx, empl); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Info("update password success", zap.String("employee_id", id))
	return nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                empl.ID.String(),
		FirstName:         empl.FirstName,
		LastName:          empl.LastName,
		Email:             empl.Email,
		Mobile:            empl.Mobile,
		CardNumber:        empl.CardNumber,
		LoginRole:         empl.LoginRole,
		JobRole:           empl.JobRole,
		Domain:            empl.Domain,
		Gender:            empl.Gender,
		JoiningDate:       empl.JoiningDate.Format("2006-01-02"),
		Salary:            empl.Salary.StringFixed(2),
		DaysPresent:       empl.DaysPresent,
		PaidLeaves:        empl.PaidLeaves,
		BankAccountNumber: empl.BankAccountNumber,
		BankName:          empl.BankName,
		PfNumber:          empl.PfNumber,
		PanNumber:         empl.PanNumber,
		UanNumber:         empl.UanNumber,
		EpsNumber:         empl.EpsNumber,
		EsiNumber:         empl.EsiNumber,
		Status:            empl.Status,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
