package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound             = errors.New("resource not found")
	ErrAlreadyExists        = errors.New("resource already exists")
	ErrBadRequest           = errors.New("bad request")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrOfferNotActive       = errors.New("offer is not active")
	ErrInsufficientQuantity = errors.New("insufficient offer quantity")
	ErrKYCNotApproved       = errors.New("kyc not approved")
	ErrUpstreamFailure      = errors.New("upstream provider failure")
)

// AppError represents an application error with an HTTP status
type AppError struct {
	Status  int    `json:"-"`
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
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Message: message,
		Err:     err,
	}
}

// Common error constructors
func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message, ErrBadRequest)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, message, ErrForbidden)
}

func Conflict(message string, err error) *AppError {
	return NewAppError(http.StatusConflict, message, err)
}

// Invalid maps a validation-class failure (inactive offer, insufficient
// quantity) to 400, keeping the sentinel reachable through errors.Is.
func Invalid(message string, err error) *AppError {
	return NewAppError(http.StatusBadRequest, message, err)
}

// Upstream maps provider failures to 500; the caller cannot distinguish a
// provider outage from a local fault and should not retry differently.
func Upstream(message string, err error) *AppError {
	return NewAppError(http.StatusInternalServerError, message, errors.Join(ErrUpstreamFailure, err))
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, "internal server error", err)
}
