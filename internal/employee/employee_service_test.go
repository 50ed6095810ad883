package employee_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"neb-hris/internal/employee"
	employeeerrors "neb-hris/internal/employee/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeEmployeeRepository struct {
	createFn        func(ctx context.Context, empl *employee.Employee) error
	existsByEmailFn func(ctx context.Context, email string) (bool, error)
	findAllFn       func(ctx context.Context, excludeRoles []string) ([]employee.Employee, error)
	findByIDFn      func(ctx context.Context, id string) (*employee.Employee, error)
	updateFn        func(ctx context.Context, empl *employee.Employee) error
	softDeleteFn    func(ctx context.Context, id string) error
}

func (f *fakeEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return f }

func (f *fakeEmployeeRepository) Create(ctx context.Context, empl *employee.Employee) error {
	if f.createFn != nil {
		return f.createFn(ctx, empl)
	}
	return nil
}

func (f *fakeEmployeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if f.existsByEmailFn != nil {
		return f.existsByEmailFn(ctx, email)
	}
	return false, nil
}

func (f *fakeEmployeeRepository) FindAll(ctx context.Context, excludeRoles []string) ([]employee.Employee, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx, excludeRoles)
	}
	return nil, nil
}

func (f *fakeEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindByIDAnyStatus(ctx context.Context, id string) (*employee.Employee, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeEmployeeRepository) FindByEmail(ctx context.Context, email string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) FindByEmailAndRole(ctx context.Context, email, loginRole string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepository) Update(ctx context.Context, empl *employee.Employee) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, empl)
	}
	return nil
}

func (f *fakeEmployeeRepository) SoftDelete(ctx context.Context, id string) error {
	if f.softDeleteFn != nil {
		return f.softDeleteFn(ctx, id)
	}
	return nil
}

type fakeCounterRepository struct {
	next int64
	err  error
}

func (f *fakeCounterRepository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.next++
	return f.next, nil
}

type employeeServiceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service employee.Service
	repo    *fakeEmployeeRepository
	counter *fakeCounterRepository
}

func setupEmployeeServiceTest(t *testing.T) employeeServiceDeps {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := &fakeEmployeeRepository{}
	counterRepo := &fakeCounterRepository{}

	svc := employee.NewService(db, repo, counterRepo)

	return employeeServiceDeps{
		db:      db,
		sqlMock: mock,
		service: svc,
		repo:    repo,
		counter: counterRepo,
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

func createRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FirstName:   "Asha",
		LastName:    "Nair",
		Email:       "asha.nair@example.com",
		Mobile:      "9876543210",
		JobRole:     "developer",
		Domain:      "Go",
		Gender:      "female",
		JoiningDate: "2023-04-01",
		Salary:      "50000",
		Password:    "s3cret-pass",
	}
}

func TestEmployeeService_Create(t *testing.T) {
	t.Run("generates a card number and hashes the password", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)

		var created *employee.Employee
		deps.repo.createFn = func(ctx context.Context, empl *employee.Employee) error {
			created = empl
			return nil
		}

		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.Create(context.Background(), createRequest())
		assert.NoError(t, err)

		assert.Equal(t, "NEB-000001", resp.CardNumber)
		assert.Equal(t, employee.RoleEmployee, resp.LoginRole)
		assert.Equal(t, "50000.00", resp.Salary)
		assert.Equal(t, employee.StatusActive, resp.Status)

		assert.NotNil(t, created)
		assert.NotEqual(t, "s3cret-pass", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret-pass")))

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("keeps a caller supplied card number", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)

		expectTx(t, deps.sqlMock, true)

		req := createRequest()
		req.CardNumber = "NEB-900001"

		resp, err := deps.service.Create(context.Background(), req)
		assert.NoError(t, err)
		assert.Equal(t, "NEB-900001", resp.CardNumber)
		assert.Zero(t, deps.counter.next, "counter must not be consumed")

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)

		deps.repo.existsByEmailFn = func(ctx context.Context, email string) (bool, error) {
			return true, nil
		}

		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Create(context.Background(), createRequest())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("reuses a soft deleted employee's email", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)

		// The uniqueness check is scoped to active rows, so an email
		// freed by a soft delete is available again.
		deps.repo.existsByEmailFn = func(ctx context.Context, email string) (bool, error) {
			return false, nil
		}

		expectTx(t, deps.sqlMock, true)

		resp, err := deps.service.Create(context.Background(), createRequest())
		assert.NoError(t, err)
		assert.Equal(t, "asha.nair@example.com", resp.Email)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid salary", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)

		req := createRequest()
		req.Salary = "fifty thousand"
		_, err := deps.service.Create(context.Background(), req)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidSalary)

		req.Salary = "-1"
		_, err = deps.service.Create(context.Background(), req)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidSalary)
	})

	t.Run("invalid joining date", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)

		req := createRequest()
		req.JoiningDate = "01-04-2023"
		_, err := deps.service.Create(context.Background(), req)
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidJoiningDate)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	t.Run("soft deletes", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)

		var deletedID string
		deps.repo.softDeleteFn = func(ctx context.Context, id string) error {
			deletedID = id
			return nil
		}

		expectTx(t, deps.sqlMock, true)

		id := uuid.NewString()
		assert.NoError(t, deps.service.Delete(context.Background(), id))
		assert.Equal(t, id, deletedID)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)

		deps.repo.softDeleteFn = func(ctx context.Context, id string) error {
			return gorm.ErrRecordNotFound
		}

		expectTx(t, deps.sqlMock, false)

		err := deps.service.Delete(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_UpdateAttendance(t *testing.T) {
	deps := setupEmployeeServiceTest(t)

	empl := &employee.Employee{
		ID:          uuid.New(),
		FirstName:   "Asha",
		JoiningDate: time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC),
		Salary:      decimal.NewFromInt(50000),
		DaysPresent: 20,
		Status:      employee.StatusActive,
	}
	deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
		return empl, nil
	}

	expectTx(t, deps.sqlMock, true)

	resp, err := deps.service.UpdateAttendance(context.Background(), empl.ID.String(), 26)
	assert.NoError(t, err)
	assert.Equal(t, 26, resp.DaysPresent)

	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_UpdatePassword(t *testing.T) {
	hashed := func(pw string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
		return string(h)
	}

	t.Run("rotates the hash", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)

		empl := &employee.Employee{
			ID:       uuid.New(),
			Password: hashed("old-pass"),
			Status:   employee.StatusActive,
		}
		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return empl, nil
		}

		var updated *employee.Employee
		deps.repo.updateFn = func(ctx context.Context, e *employee.Employee) error {
			updated = e
			return nil
		}

		expectTx(t, deps.sqlMock, true)

		err := deps.service.UpdatePassword(context.Background(), empl.ID.String(), employee.UpdatePasswordRequest{
			OldPassword: "old-pass",
			NewPassword: "new-pass",
		})
		assert.NoError(t, err)

		assert.NotNil(t, updated)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("new-pass")))

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("old password mismatch", func(t *testing.T) {
		deps := setupEmployeeServiceTest(t)

		deps.repo.findByIDFn = func(ctx context.Context, id string) (*employee.Employee, error) {
			return &employee.Employee{ID: uuid.New(), Password: hashed("old-pass")}, nil
		}

		updateCalled := false
		deps.repo.updateFn = func(ctx context.Context, e *employee.Employee) error {
			updateCalled = true
			return nil
		}

		expectTx(t, deps.sqlMock, false)

		err := deps.service.UpdatePassword(context.Background(), uuid.NewString(), employee.UpdatePasswordRequest{
			OldPassword: "wrong-pass",
			NewPassword: "new-pass",
		})
		assert.ErrorIs(t, err, employeeerrors.ErrPasswordMismatch)
		assert.False(t, updateCalled)

		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_Create_CounterFailure(t *testing.T) {
	deps := setupEmployeeServiceTest(t)
	deps.counter.err = errors.New("sequence unavailable")

	expectTx(t, deps.sqlMock, false)

	_, err := deps.service.Create(context.Background(), createRequest())
	assert.Error(t, err)

	assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
}
