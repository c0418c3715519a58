package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/marcos-nsantos/photo-portfolio/internal/domain"
)

type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code, message string, statusCode int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

func NotFound(resource string) *AppError {
	return &AppError{
		Code:       "NOT_FOUND",
		Message:    fmt.Sprintf("%s not found", resource),
		StatusCode: http.StatusNotFound,
	}
}

func BadRequest(message string) *AppError {
	return &AppError{
		Code:       "BAD_REQUEST",
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func Unauthorized(message string) *AppError {
	return &AppError{
		Code:       "UNAUTHORIZED",
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func Unavailable(message string) *AppError {
	return &AppError{
		Code:       "UNAVAILABLE",
		Message:    message,
		StatusCode: http.StatusServiceUnavailable,
	}
}

func Internal(err error) *AppError {
	return &AppError{
		Code:       "INTERNAL_ERROR",
		Message:    "an internal error occurred",
		StatusCode: http.StatusInternalServerError,
		Err:        err,
	}
}

// FromError maps domain sentinels onto their HTTP form. Anything unknown
// becomes an internal error.
func FromError(err error) *AppError {
	var appErr *AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, domain.ErrPhotoNotFound):
		return &AppError{Code: "NOT_FOUND", Message: "photo not found", StatusCode: http.StatusNotFound, Err: err}
	case errors.Is(err, domain.ErrTokenInvalid):
		return &AppError{Code: "UNAUTHORIZED", Message: "invalid or expired token", StatusCode: http.StatusUnauthorized, Err: err}
	case errors.Is(err, domain.ErrStoreNotConfigured):
		return &AppError{Code: "UNAVAILABLE", Message: "photo store not configured", StatusCode: http.StatusServiceUnavailable, Err: err}
	default:
		return Internal(err)
	}
}

func StatusCode(err error) int {
	return FromError(err).StatusCode
}
