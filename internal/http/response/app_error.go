package response

import "fmt"

// AppError pairs a business status code with a message and the underlying
// cause, if any.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("code=%d msg=%s err=%v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("code=%d msg=%s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause.
func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// WrapError builds an AppError around a cause.
func WrapError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
