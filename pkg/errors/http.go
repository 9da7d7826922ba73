package errors

import "net/http"

// HTTPError is an error that carries the HTTP status and body code it should be rendered with.
type HTTPError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

// NewHTTPError returns an HTTPError whose code and HTTP status are both code.
func NewHTTPError(code int, message string) *HTTPError {
	status := code
	if status < 100 || status > 599 {
		status = http.StatusBadRequest
	}
	return &HTTPError{Code: code, Message: message, StatusCode: status}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewUnauthorizedHTTPError is the error returned for missing or invalid credentials.
func NewUnauthorizedHTTPError() *HTTPError {
	return NewHTTPError(http.StatusUnauthorized, "Unauthorized")
}
