package models

import "fmt"

// ErrorCode identifies why the bridge refused a request.
type ErrorCode string

const (
	// ErrorCodeInternalServerError is returned when a scrape cannot be encoded.
	ErrorCodeInternalServerError ErrorCode = "internal_server_error"
	// ErrorCodeBadRequest covers listen failures that are not tied to one field.
	ErrorCodeBadRequest ErrorCode = "bad_request"

	// Listen payload errors
	ErrorCodeInvalidFormat    ErrorCode = "invalid_format"    // body is not a single JSON object
	ErrorCodeMissingParameter ErrorCode = "missing_parameter" // a reading key is absent or null
	ErrorCodeValidationFailed ErrorCode = "validation_failed" // a reading value is not a string or does not parse
)

// APIError is the JSON body sent with every non-2xx response.
// For field errors Details carries the offending key and the FieldErrorKind.
type APIError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Details    any       `json:"details,omitempty"`
	StatusCode int       `json:"-"`
}

func (e APIError) Error() string {
	return fmt.Sprintf("%d %s: %s", e.StatusCode, e.Code, e.Message)
}

// NewAPIError builds an APIError sent with the given HTTP status.
func NewAPIError(code ErrorCode, message string, details any, statusCode int) APIError {
	return APIError{
		Code:       code,
		Message:    message,
		Details:    details,
		StatusCode: statusCode,
	}
}
