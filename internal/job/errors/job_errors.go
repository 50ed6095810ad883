package joberrors

import (
	"net/http"

	"neb-hris/internal/shared/apperror"
)

var (
	ErrJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"Job posting not found",
		http.StatusNotFound,
	)
	ErrInvalidJobID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid job ID",
		http.StatusBadRequest,
	)
	ErrInvalidClosingDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid closing_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
