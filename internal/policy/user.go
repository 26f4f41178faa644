package policy

import (
	"task-service/internal/domain/user"
	"task-service/internal/rbac"
	apperrors "task-service/pkg/errors"
)

const (
	msgCurrentUserNotFound = "Current user not found."
	msgUserNotFound        = "User not found."
	msgUserFieldNotAllowed = "You are not allowed to update UserName or Role."
	msgUserRoleInvalid     = "Role must be Admin or User."
)

// ApplyUserUpdate mutates target in place. actor is the caller's own
// identity, already resolved; nil means it could not be found.
// Blank values are ignored, so applying the same changes twice is a no-op.
func ApplyUserUpdate(actor, target *user.User, changes user.UpdateUserInput) error {
	if actor == nil {
		return apperrors.InvalidActor(msgCurrentUserNotFound)
	}
	if target == nil {
		return apperrors.NotFound(msgUserNotFound)
	}

	isAdmin := actor.Role == rbac.RoleAdmin

	if !isAdmin && (!isBlank(changes.UserName) || !isBlank(changes.Role)) {
		return apperrors.ForbiddenField(msgUserFieldNotAllowed)
	}

	if isAdmin {
		if !isBlank(changes.Role) {
			role, err := rbac.ParseRole(*changes.Role)
			if err != nil {
				return apperrors.Validation(msgUserRoleInvalid)
			}
			target.Role = role
		}
		if !isBlank(changes.UserName) {
			target.UserName = *changes.UserName
		}
	}

	if !isBlank(changes.Password) {
		target.Password = *changes.Password
	}
	if !isBlank(changes.Email) {
		target.Email = *changes.Email
	}
	if !isBlank(changes.Phone) {
		phone := *changes.Phone
		target.Phone = &phone
	}

	return nil
}
