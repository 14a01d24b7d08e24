package apperror

import (
	"errors"
	"net/http"
)

// AppError represents an application error with HTTP status code
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrBackendUnreachable = &AppError{Code: http.StatusServiceUnavailable, Message: "Backend unreachable"}
	ErrRegisterClosed     = &AppError{Code: http.StatusConflict, Message: "Cash register is closed"}
	ErrSubmissionInFlight = &AppError{Code: http.StatusConflict, Message: "A sale submission is already in progress"}
	ErrCartEmpty          = &AppError{Code: http.StatusUnprocessableEntity, Message: "Cart is empty"}
	ErrSaleUnsettled      = &AppError{Code: http.StatusUnprocessableEntity, Message: "Tendered amount does not cover the sale total"}
	ErrCustomerRequired   = &AppError{Code: http.StatusUnprocessableEntity, Message: "Selected document type requires a customer"}
)

// NewAppError creates a new application error
func NewAppError(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// NewNotFoundError creates a not found error with a custom message
func NewNotFoundError(resource string) *AppError {
	return &AppError{
		Code:    http.StatusNotFound,
		Message: resource + " not found",
	}
}

// NewBadRequestError creates a bad request error with a custom message
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Code:    http.StatusBadRequest,
		Message: message,
	}
}

// GetAppError converts an error to AppError if possible
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:    http.StatusInternalServerError,
		Message: err.Error(),
	}
}
