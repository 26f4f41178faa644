package handler

import (
	"net/http"
	apperrors "task-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

// MapToPublicError maps a service error to a status code and the message the
// client may see. Unexpected errors never expose their detail.
func MapToPublicError(err error) (int, string) {
	var status int
	switch apperrors.KindOf(err) {
	case apperrors.KindMalformed, apperrors.KindInvalidInput, apperrors.KindValidation,
		apperrors.KindOwnershipViolation, apperrors.KindForbiddenField, apperrors.KindConflict:
		status = http.StatusBadRequest
	case apperrors.KindNotFound:
		status = http.StatusNotFound
	case apperrors.KindUnauthenticated:
		status = http.StatusUnauthorized
	case apperrors.KindInvalidActor, apperrors.KindForbiddenRole, apperrors.KindAccessDenied:
		status = http.StatusForbidden
	default:
		return http.StatusInternalServerError, msgUnexpected
	}
	return status, apperrors.Message(err, http.StatusText(status))
}

// RespondWithMappedError responds with {"error": message} using MapToPublicError.
func RespondWithMappedError(c echo.Context, err error) error {
	status, msg := MapToPublicError(err)
	return respondError(c, status, msg)
}
