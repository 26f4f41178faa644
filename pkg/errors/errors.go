package errors

import (
	"errors"
	"fmt"
)

// Domain errors - Sentinel errors for use with errors.Is()
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrBadRequest         = errors.New("bad request")
	ErrConflict           = errors.New("resource already exists")
	ErrInternalServer     = errors.New("internal server error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrExpired            = errors.New("resource expired")
	ErrValidation         = errors.New("validation error")
	ErrInvalidInput       = errors.New("invalid input")
	ErrMalformed          = errors.New("malformed request")
	ErrOwnershipViolation = errors.New("ownership violation")
	ErrForbiddenField     = errors.New("forbidden field mutation")
	ErrInvalidActor       = errors.New("invalid actor")
	ErrAccessDenied       = errors.New("access denied")
)

// Kind names an error category so callers can branch without string matching.
type Kind string

const (
	KindMalformed          Kind = "malformed_input"
	KindInvalidInput       Kind = "invalid_input"
	KindValidation         Kind = "validation"
	KindNotFound           Kind = "not_found"
	KindOwnershipViolation Kind = "ownership_violation"
	KindForbiddenField     Kind = "forbidden_field"
	KindInvalidActor       Kind = "invalid_actor"
	KindUnauthenticated    Kind = "unauthenticated"
	KindForbiddenRole      Kind = "forbidden_role"
	KindAccessDenied       Kind = "access_denied"
	KindConflict           Kind = "conflict"
	KindUnexpected         Kind = "unexpected"
)

// Custom error type with context
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// KindOf classifies err. Order matters: the most specific sentinels are checked first.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrMalformed):
		return KindMalformed
	case errors.Is(err, ErrOwnershipViolation):
		return KindOwnershipViolation
	case errors.Is(err, ErrForbiddenField):
		return KindForbiddenField
	case errors.Is(err, ErrInvalidActor):
		return KindInvalidActor
	case errors.Is(err, ErrAccessDenied):
		return KindAccessDenied
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrBadRequest):
		return KindInvalidInput
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrExpired):
		return KindUnauthenticated
	case errors.Is(err, ErrForbidden):
		return KindForbiddenRole
	case errors.Is(err, ErrConflict):
		return KindConflict
	default:
		return KindUnexpected
	}
}

// Message returns the client-facing message carried by err, or fallback when
// err is not an AppError.
func Message(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}

// Constructors
func NotFound(msg string) *AppError {
	return &AppError{Code: "NOT_FOUND", Message: msg, Err: ErrNotFound}
}

func Unauthorized(msg string) *AppError {
	return &AppError{Code: "UNAUTHORIZED", Message: msg, Err: ErrUnauthorized}
}

func Forbidden(msg string) *AppError {
	return &AppError{Code: "FORBIDDEN", Message: msg, Err: ErrForbidden}
}

func BadRequest(msg string) *AppError {
	return &AppError{Code: "BAD_REQUEST", Message: msg, Err: ErrBadRequest}
}

func Conflict(msg string) *AppError {
	return &AppError{Code: "CONFLICT", Message: msg, Err: ErrConflict}
}

func InternalServer(msg string, err error) *AppError {
	return &AppError{Code: "INTERNAL_SERVER_ERROR", Message: msg, Err: err}
}

func InvalidCredentials() *AppError {
	return &AppError{Code: "INVALID_CREDENTIALS", Message: "invalid username or password", Err: ErrInvalidCredentials}
}

func Expired(msg string) *AppError {
	return &AppError{Code: "EXPIRED", Message: msg, Err: ErrExpired}
}

func Validation(msg string) *AppError {
	return &AppError{Code: "VALIDATION_ERROR", Message: msg, Err: ErrValidation}
}

func InvalidInput(msg string) *AppError {
	return &AppError{Code: "INVALID_INPUT", Message: msg, Err: ErrInvalidInput}
}

func Malformed(msg string) *AppError {
	return &AppError{Code: "MALFORMED", Message: msg, Err: ErrMalformed}
}

func OwnershipViolation(msg string) *AppError {
	return &AppError{Code: "OWNERSHIP_VIOLATION", Message: msg, Err: ErrOwnershipViolation}
}

func ForbiddenField(msg string) *AppError {
	return &AppError{Code: "FORBIDDEN_FIELD", Message: msg, Err: ErrForbiddenField}
}

func InvalidActor(msg string) *AppError {
	return &AppError{Code: "INVALID_ACTOR", Message: msg, Err: ErrInvalidActor}
}

func AccessDenied(msg string) *AppError {
	return &AppError{Code: "ACCESS_DENIED", Message: msg, Err: ErrAccessDenied}
}
