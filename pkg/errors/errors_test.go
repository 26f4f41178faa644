package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"malformed", Malformed("Invalid or missing status."), KindMalformed},
		{"not found", NotFound("Task not found"), KindNotFound},
		{"ownership", OwnershipViolation("You do not own this task."), KindOwnershipViolation},
		{"forbidden field", ForbiddenField("no"), KindForbiddenField},
		{"invalid actor", InvalidActor("Current user not found."), KindInvalidActor},
		{"access denied", AccessDenied("no"), KindAccessDenied},
		{"invalid input", InvalidInput("TaskName is required."), KindInvalidInput},
		{"validation", Validation("bad email"), KindValidation},
		{"unauthorized", Unauthorized("Unauthorized."), KindUnauthenticated},
		{"credentials", InvalidCredentials(), KindUnauthenticated},
		{"expired", Expired("Token has expired."), KindUnauthenticated},
		{"forbidden", Forbidden("role mismatch"), KindForbiddenRole},
		{"wrapped", fmt.Errorf("update: %w", ForbiddenField("no")), KindForbiddenField},
		{"plain", errors.New("boom"), KindUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Task not found", Message(fmt.Errorf("wrap: %w", NotFound("Task not found")), "fallback"))
	assert.Equal(t, "fallback", Message(errors.New("raw"), "fallback"))
}

func TestAppError_Error(t *testing.T) {
	err := InternalServer("failed to load", errors.New("connection reset"))
	assert.Equal(t, "failed to load: connection reset", err.Error())
	assert.Equal(t, "Task not found: resource not found", NotFound("Task not found").Error())
	assert.Equal(t, "bad request", BadRequest("bad request").Error())
}
