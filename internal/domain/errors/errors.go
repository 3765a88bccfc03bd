package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound             = errors.New("customer not found")
	ErrDuplicateEmail       = errors.New("customer already exists")
	ErrInvalidCustomerData  = errors.New("invalid customer data")
	ErrInvalidEmailFormat   = errors.New("invalid email format")
	ErrMissingCredential    = errors.New("missing credential")
	ErrAuthenticationFailed = errors.New("email or password is incorrect")
	ErrInvalidInput         = errors.New("invalid input")
	ErrPasswordMismatch     = errors.New("new password and confirm password do not match")
	ErrInvalidNIC           = errors.New("invalid nic")
)

// AppError represents an application error with an HTTP status code
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrInvalidInput)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrAuthenticationFailed)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}
