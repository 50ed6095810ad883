package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"neb-hris/internal/employee"
	employeeerrors "neb-hris/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  json.RawMessage `json:"meta"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeEmployeeService struct {
	createFn         func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	getAllFn         func(ctx context.Context, excludeRoles []string) ([]employee.EmployeeResponse, error)
	getByIDFn        func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	deleteFn         func(ctx context.Context, id string) error
	updateAttnFn     func(ctx context.Context, id string, daysPresent int) (employee.EmployeeResponse, error)
	updatePasswordFn func(ctx context.Context, id string, req employee.UpdatePasswordRequest) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakeEmployeeService) GetAll(ctx context.Context, excludeRoles []string) ([]employee.EmployeeResponse, error) {
	return f.getAllFn(ctx, excludeRoles)
}

func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeEmployeeService) GetByEmail(ctx context.Context, email string) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{}, nil
}

func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{}, nil
}

func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func (f *fakeEmployeeService) UpdateAttendance(ctx context.Context, id string, daysPresent int) (employee.EmployeeResponse, error) {
	return f.updateAttnFn(ctx, id, daysPresent)
}

func (f *fakeEmployeeService) UpdateBankDetails(ctx context.Context, id string, req employee.UpdateBankDetailsRequest) (employee.EmployeeResponse, error) {
	return employee.EmployeeResponse{}, nil
}

func (f *fakeEmployeeService) UpdatePassword(ctx context.Context, id string, req employee.UpdatePasswordRequest) error {
	return f.updatePasswordFn(ctx, id, req)
}

func staffResponses() []employee.EmployeeResponse {
	return []employee.EmployeeResponse{
		{ID: uuid.NewString(), FirstName: "Ravi", LastName: "Menon", Email: "ravi@example.com", CardNumber: "NEB-000002", JoiningDate: "2024-01-15"},
		{ID: uuid.NewString(), FirstName: "Asha", LastName: "Nair", Email: "asha@example.com", CardNumber: "NEB-000001", JoiningDate: "2023-04-01"},
		{ID: uuid.NewString(), FirstName: "Meera", LastName: "Pillai", Email: "meera@example.com", CardNumber: "NEB-000003", JoiningDate: "2025-06-10"},
	}
}

func TestEmployeeHandler_GetAll(t *testing.T) {
	t.Run("sorts by name ascending by default", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getAllFn: func(ctx context.Context, excludeRoles []string) ([]employee.EmployeeResponse, error) {
				assert.Nil(t, excludeRoles)
				return staffResponses(), nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees", nil)

		h.GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := mustDecodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)

		var page []employee.EmployeeResponse
		assert.NoError(t, json.Unmarshal(env.Data, &page))
		assert.Len(t, page, 3)
		assert.Equal(t, "Asha", page[0].FirstName)
		assert.Equal(t, "Meera", page[1].FirstName)
		assert.Equal(t, "Ravi", page[2].FirstName)
	})

	t.Run("text filter matches card number", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getAllFn: func(ctx context.Context, excludeRoles []string) ([]employee.EmployeeResponse, error) {
				return staffResponses(), nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees?q=neb-000003", nil)

		h.GetAll(c)

		env := mustDecodeEnvelope(t, w.Body.Bytes())
		var page []employee.EmployeeResponse
		assert.NoError(t, json.Unmarshal(env.Data, &page))
		assert.Len(t, page, 1)
		assert.Equal(t, "Meera", page[0].FirstName)
	})

	t.Run("pagination slices the sorted list", func(t *testing.T) {
		svc := &fakeEmployeeService{
			getAllFn: func(ctx context.Context, excludeRoles []string) ([]employee.EmployeeResponse, error) {
				return staffResponses(), nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees?page=2&page_size=2&sort_by=card_number", nil)

		h.GetAll(c)

		env := mustDecodeEnvelope(t, w.Body.Bytes())
		var page []employee.EmployeeResponse
		assert.NoError(t, json.Unmarshal(env.Data, &page))
		assert.Len(t, page, 1)
		assert.Equal(t, "NEB-000003", page[0].CardNumber)

		var meta struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"totalPages"`
			Page       int   `json:"page"`
		}
		assert.NoError(t, json.Unmarshal(env.Meta, &meta))
		assert.Equal(t, int64(3), meta.Total)
		assert.Equal(t, 2, meta.TotalPages)
		assert.Equal(t, 2, meta.Page)
	})

	t.Run("exclude admins flag reaches the service", func(t *testing.T) {
		var gotExclude []string
		svc := &fakeEmployeeService{
			getAllFn: func(ctx context.Context, excludeRoles []string) ([]employee.EmployeeResponse, error) {
				gotExclude = excludeRoles
				return nil, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/employees?exclude_admins=true", nil)

		h.GetAll(c)

		assert.Equal(t, []string{employee.RoleAdmin}, gotExclude)
	})
}

func TestEmployeeHandler_Create_ValidationError(t *testing.T) {
	h := employee.NewHandler(&fakeEmployeeService{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{"first_name":"Asha"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
}

func TestEmployeeHandler_UpdateAttendance(t *testing.T) {
	t.Run("valid days", func(t *testing.T) {
		id := uuid.NewString()
		svc := &fakeEmployeeService{
			updateAttnFn: func(ctx context.Context, eid string, days int) (employee.EmployeeResponse, error) {
				assert.Equal(t, id, eid)
				assert.Equal(t, 26, days)
				return employee.EmployeeResponse{ID: eid, DaysPresent: days}, nil
			},
		}

		h := employee.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPut, "/employees/"+id+"/attendance/26", nil)
		c.Params = []gin.Param{{Key: "id", Value: id}, {Key: "days", Value: "26"}}

		h.UpdateAttendance(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("days out of range", func(t *testing.T) {
		h := employee.NewHandler(&fakeEmployeeService{})
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		id := uuid.NewString()
		c.Request = httptest.NewRequest(http.MethodPut, "/employees/"+id+"/attendance/40", nil)
		c.Params = []gin.Param{{Key: "id", Value: id}, {Key: "days", Value: "40"}}

		h.UpdateAttendance(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestEmployeeHandler_UpdatePassword_Mismatch(t *testing.T) {
	svc := &fakeEmployeeService{
		updatePasswordFn: func(ctx context.Context, id string, req employee.UpdatePasswordRequest) error {
			return employeeerrors.ErrPasswordMismatch
		},
	}

	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"old_password":"wrong-pass","new_password":"new-pass-123"}`
	c.Request = httptest.NewRequest(http.MethodPut, "/employees/password", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", uuid.NewString())

	h.UpdatePassword(c)

	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
}
