package pkg

import "fmt"

// AppError is a machine-readable application error carrying the HTTP
// status used when the error reaches the route boundary.
type AppError struct {
	Code       string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewDomainError wraps an underlying error with a stable code and message.
func NewDomainError(code, message string, err error, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, Err: err, HTTPStatus: httpStatus}
}

// NewDomainErrorSimple builds an AppError without an underlying cause.
func NewDomainErrorSimple(code, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

// ErrorBody is the error half of the response envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HTTPError is the JSON envelope written for failed requests.
type HTTPError struct {
	Success bool      `json:"success"`
	Error   ErrorBody `json:"error"`
}

// ToHTTPError renders the envelope body. The underlying cause is never
// serialized so upstream payloads and internals stay server-side.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Success: false,
		Error:   ErrorBody{Code: e.Code, Message: e.Message},
	}
}
