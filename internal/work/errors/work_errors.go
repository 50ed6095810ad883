package workerrors

import (
	"net/http"

	"neb-hris/internal/shared/apperror"
)

var (
	ErrWorkNotFound = apperror.New(
		apperror.CodeNotFound,
		"Work item not found",
		http.StatusNotFound,
	)
	ErrInvalidWorkID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid work ID",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidState,
		"Invalid work status transition",
		http.StatusBadRequest,
	)
	ErrUnsupportedFileType = apperror.New(
		apperror.CodeUnsupportedFile,
		"Only PDF attachments are accepted",
		http.StatusBadRequest,
	)
	ErrInvalidDueDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid due_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrAttachmentTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"Attachment exceeds the maximum allowed size",
		http.StatusBadRequest,
	)
	ErrNotAssignee = apperror.New(
		apperror.CodeForbidden,
		"Only the assigned employee may modify this task",
		http.StatusForbidden,
	)
)
