package applicationerrors

import (
	"net/http"

	"neb-hris/internal/shared/apperror"
)

var (
	ErrApplicationExists = apperror.New(
		apperror.CodeConflict,
		"An application already exists for this email address",
		http.StatusConflict,
	)
	ErrInvalidOrExpiredOtp = apperror.New(
		apperror.CodeInvalidOtp,
		"The verification code is invalid or has expired",
		http.StatusUnauthorized,
	)
	ErrApplicationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Application not found",
		http.StatusNotFound,
	)
	ErrUnsupportedResume = apperror.New(
		apperror.CodeUnsupportedFile,
		"Only PDF resumes are accepted",
		http.StatusBadRequest,
	)
)
