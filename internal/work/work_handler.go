package work

import (
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"neb-hris/internal/shared/apperror"
	"neb-hris/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("work.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("work.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("work request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func readUpload(header *multipart.FileHeader) (*Upload, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &Upload{FileName: header.Filename, Data: data}, nil
}

// Assign accepts a multipart form with the assignment fields plus an
// optional PDF attachment under the "attachment" key.
func (h *Handler) Assign(c *gin.Context) {
	h.logger.Debug("http assign work")

	req := AssignWorkRequest{
		EmployeeID:  c.PostForm("employee_id"),
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		DueDate:     c.PostForm("due_date"),
	}
	if req.EmployeeID == "" || req.Title == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", "employee_id and title are required")
		return
	}

	var upload *Upload
	if header, err := c.FormFile("attachment"); err == nil {
		u, err := readUpload(header)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", "could not read attachment")
			return
		}
		upload = u
	}

	resp, err := h.service.Assign(c.Request.Context(), req, upload)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	resp, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetById(c *gin.Context) {
	resp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ListByEmployee(c *gin.Context) {
	resp, err := h.service.ListByEmployee(c.Request.Context(), c.Param("employeeId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// ListMine lists work assigned to the authenticated employee.
func (h *Handler) ListMine(c *gin.Context) {
	resp, err := h.service.ListByEmployee(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// SubmitReport accepts a multipart form with a "report" text field and
// an optional PDF attachment.
func (h *Handler) SubmitReport(c *gin.Context) {
	req := SubmitReportRequest{Report: c.PostForm("report")}
	if req.Report == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", "report is required")
		return
	}

	var upload *Upload
	if header, err := c.FormFile("attachment"); err == nil {
		u, err := readUpload(header)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", "could not read attachment")
			return
		}
		upload = u
	}

	resp, err := h.service.SubmitReport(c.Request.Context(), c.Param("id"), req, upload)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// DailyReport streams the daily work report for the requested date
// (query param "date", defaults to today).
func (h *Handler) DailyReport(c *gin.Context) {
	date := time.Now()
	if v := c.Query("date"); v != "" {
		parsed, err := time.Parse("2006-01-02", v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	data, err := h.service.DailyReport(c.Request.Context(), date)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="work_report_`+date.Format("2006-01-02")+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
