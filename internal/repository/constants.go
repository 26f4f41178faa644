package repository

const (
	MsgUserNotFound    = "User not found."
	MsgTaskNotFound    = "Task not found"
	MsgUserNameTaken   = "UserName is already taken."
	MsgTaskIDTakenFmt  = "Task with ID %d already exists."
	errSeedUserFmt     = "failed to seed user %s: %w"
	errSeedTaskFmt     = "failed to seed task %d: %w"
	errCountForSeedFmt = "failed to count records before seeding: %w"
)
