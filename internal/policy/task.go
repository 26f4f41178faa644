// Package policy holds the field and ownership rules for mutating tasks and
// users. Every business-level role comparison in the service lives here.
package policy

import (
	"strings"
	"task-service/internal/domain/task"
	"task-service/internal/rbac"
	apperrors "task-service/pkg/errors"
)

const (
	msgInvalidStatus          = "Invalid or missing status."
	msgTaskNotFound           = "Task not found"
	msgTaskNotOwned           = "You do not own this task."
	msgTaskFieldNotAllowed    = "You are not allowed to update task name or description."
	msgTaskUpdateRoleRequired = "Only Admin or User roles may update tasks."
)

// Actor is the caller as seen by the policy rules.
type Actor struct {
	ID   string
	Role rbac.Role
}

// AuthorizeTaskUpdate checks the request shape and the actor's role. It runs
// before the task is loaded so malformed or unauthorized requests never touch the store.
func AuthorizeTaskUpdate(actor Actor, changes task.UpdateTaskInput) error {
	if isBlank(&changes.Status) {
		return apperrors.Malformed(msgInvalidStatus)
	}

	switch actor.Role {
	case rbac.RoleAdmin, rbac.RoleUser:
		return nil
	default:
		return apperrors.AccessDenied(msgTaskUpdateRoleRequired)
	}
}

// ApplyTaskUpdate mutates t in place when actor may apply changes to it.
// A nil t means the task does not exist.
func ApplyTaskUpdate(actor Actor, t *task.Task, changes task.UpdateTaskInput) error {
	if err := AuthorizeTaskUpdate(actor, changes); err != nil {
		return err
	}

	if t == nil {
		return apperrors.NotFound(msgTaskNotFound)
	}

	if actor.Role == rbac.RoleAdmin {
		t.Name = changes.Name
		t.Description = changes.Description
		t.Status = changes.Status
		return nil
	}

	if t.OwnerID != actor.ID {
		return apperrors.OwnershipViolation(msgTaskNotOwned)
	}

	if !isBlank(changes.Name) || !isBlank(changes.Description) {
		return apperrors.ForbiddenField(msgTaskFieldNotAllowed)
	}

	t.Status = changes.Status
	return nil
}

// CanViewTask reports whether actor may read t. Admins see everything,
// users only what they own.
func CanViewTask(actor Actor, t *task.Task) bool {
	if t == nil {
		return false
	}
	switch actor.Role {
	case rbac.RoleAdmin:
		return true
	case rbac.RoleUser:
		return t.OwnerID == actor.ID
	default:
		return false
	}
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}
