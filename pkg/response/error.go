package response

import "net/http"

// HTTPError is a domain error translated for the wire.
type HTTPError struct {
	Status  int
	Code    int
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError returns an HTTPError whose error code mirrors the status.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Code: status, Message: message}
}

// NewValidationError is a 400 with the generic validation code.
func NewValidationError(message string) *HTTPError {
	return &HTTPError{Status: http.StatusBadRequest, Code: ValidationErrorCode, Message: message}
}
