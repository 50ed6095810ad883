package payslip

import (
	"errors"
	"io"
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
	l := zap.L().Named("payslip.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("payslip request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Generate(c *gin.Context) {
	h.logger.Debug("http generate payslip")
	var req GeneratePayslipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http generate payslip validation failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.Generate(c.Request.Context(), req.EmployeeID, req.Period)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

// GenerateAll triggers the monthly batch by hand. The period defaults
// to the current month when the body omits it.
func (h *Handler) GenerateAll(c *gin.Context) {
	var req GenerateAllRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}
	if req.Period == "" {
		req.Period = time.Now().Format("January 2006")
	}

	result, err := h.service.GenerateAll(c.Request.Context(), req.Period)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result, nil)
}

// Download streams the rendered document as an attachment.
func (h *Handler) Download(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http download payslip", zap.String("payslip_id", id))

	fileName, data, err := h.service.Download(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *Handler) ListForEmployee(c *gin.Context) {
	employeeID := c.Param("employeeId")
	h.logger.Debug("http list payslips", zap.String("employee_id", employeeID))

	resp, err := h.service.ListForEmployee(c.Request.Context(), employeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// ListMine lists the authenticated employee's own payslips.
func (h *Handler) ListMine(c *gin.Context) {
	userID := c.GetString("user_id")

	resp, err := h.service.ListForEmployee(c.Request.Context(), userID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
