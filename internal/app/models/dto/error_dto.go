package dto

// ErrorCode represents standardized error codes.
type ErrorCode string

// Standard error codes for the application.
const (
	// Authentication errors
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeInvalidToken       ErrorCode = "AUTH_002"
	ErrorCodeExpiredToken       ErrorCode = "AUTH_003"
	ErrorCodeUnauthorized       ErrorCode = "AUTH_004"
	ErrorCodeForbidden          ErrorCode = "AUTH_005"

	// Resource errors
	ErrorCodeResourceNotFound    ErrorCode = "RES_001"
	ErrorCodeConstraintViolation ErrorCode = "RES_002"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// ErrorResponse is the standard error body. Message is always present;
// clients key 404 handling off it ("<Entity> not found").
type ErrorResponse struct {
	Message string      `json:"message"`
	Code    ErrorCode   `json:"code,omitempty"`
	Field   string      `json:"field,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

// NewErrorResponse creates a standard error response.
func NewErrorResponse(code ErrorCode, message string) *ErrorResponse {
	return &ErrorResponse{Code: code, Message: message}
}

// WithField attaches the offending field name.
func (e *ErrorResponse) WithField(field string) *ErrorResponse {
	e.Field = field
	return e
}

// WithDetails attaches additional context for the client.
func (e *ErrorResponse) WithDetails(details interface{}) *ErrorResponse {
	e.Details = details
	return e
}
