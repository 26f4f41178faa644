package service

import "math"

const (
	msgTaskNameRequired   = "TaskName is required."
	msgTaskStatusRequired = "Status is required."
	msgTaskOwnerRequired  = "Valid UserId is required."
	msgTaskIDNegative     = "Id must not be negative."
	msgTaskIDTooLargeFmt  = "Id must not exceed %d."
	msgTaskNotFoundFmt    = "Task with ID %d not found."
	msgUserNotFoundFmt    = "User with ID %s not found."
	msgCurrentUserMissing = "Current user not found."
	msgUnauthorizedAccess = "Unauthorized access."
	msgUserRoleInvalid    = "Role must be Admin or User."
	msgEmailInvalid       = "Invalid email format."
	msgUnexpected         = "unexpected store failure"

	resourceTask = "task"
	resourceUser = "user"

	outcomeAllowed = "allowed"
)

// maxTaskID matches the int4 SERIAL column backing task ids.
const maxTaskID = math.MaxInt32
