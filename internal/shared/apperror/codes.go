package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput       = "INVALID_INPUT"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeInvalidState       = "INVALID_STATE"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeInvalidOtp         = "INVALID_OR_EXPIRED_OTP"
	CodeUnsupportedFile    = "UNSUPPORTED_FILE_TYPE"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeStorageFailure     = "STORAGE_FAILURE"
	CodeGenerationFailure  = "GENERATION_FAILURE"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
