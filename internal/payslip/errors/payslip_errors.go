package paysliperrors

import (
	"net/http"

	"neb-hris/internal/shared/apperror"
)

var (
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payslip not found",
		http.StatusNotFound,
	)
	ErrPayslipFileMissing = apperror.New(
		apperror.CodeNotFound,
		"Payslip document is missing from storage",
		http.StatusNotFound,
	)
	ErrInvalidPayslipID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payslip ID",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"Period label must not be empty",
		http.StatusBadRequest,
	)
	ErrStorageFailure = apperror.New(
		apperror.CodeStorageFailure,
		"Failed to write payslip document",
		http.StatusInternalServerError,
	)
	ErrGenerationFailure = apperror.New(
		apperror.CodeGenerationFailure,
		"Failed to build payslip document",
		http.StatusInternalServerError,
	)
)
