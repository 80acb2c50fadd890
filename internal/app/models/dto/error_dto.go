package dto

// ErrorCode defines standardized error codes for the API
type ErrorCode string

// Error code constants
const (
	// Authentication errors
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeTokenExpired       ErrorCode = "AUTH_002"
	ErrorCodeTokenInvalid       ErrorCode = "AUTH_003"
	ErrorCodeUnauthorized       ErrorCode = "AUTH_004"

	// Resource errors
	ErrorCodeResourceNotFound ErrorCode = "RES_001"
	ErrorCodeResourceConflict ErrorCode = "RES_002"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	// Server errors
	ErrorCodeInternalError ErrorCode = "SRV_001"
)

// ErrorSeverity indicates how severe an error is
type ErrorSeverity string

const (
	SeverityWarning ErrorSeverity = "warning"
	SeverityError   ErrorSeverity = "error"
)

// ErrorDetail provides detailed information about an error
type ErrorDetail struct {
	Code       ErrorCode         `json:"code" example:"RES_001"`
	Message    string            `json:"message" example:"Resource not found"`
	Severity   ErrorSeverity     `json:"severity,omitempty" example:"error"`
	Field      string            `json:"field,omitempty" example:"username"`
	FieldError map[string]string `json:"fieldErrors,omitempty"`
}

// ErrorResponse is the standard error envelope returned by the API
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// NewErrorDetail creates a new error detail with the given code and message
func NewErrorDetail(code ErrorCode, message string) ErrorDetail {
	return ErrorDetail{
		Code:     code,
		Message:  message,
		Severity: SeverityError,
	}
}

// WithSeverity sets the severity of the error detail
func (e ErrorDetail) WithSeverity(severity ErrorSeverity) ErrorDetail {
	e.Severity = severity
	return e
}

// WithField sets the field related to the error
func (e ErrorDetail) WithField(field string) ErrorDetail {
	e.Field = field
	return e
}

// WithFieldErrors attaches per-field validation messages
func (e ErrorDetail) WithFieldErrors(fieldErrors map[string]string) ErrorDetail {
	e.FieldError = fieldErrors
	return e
}
