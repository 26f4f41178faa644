package handler

const (
	jsonKeyError   = "error"
	jsonKeyMessage = "message"

	headerLocation = "Location"
	usersPathFmt   = "/api/users/%s"

	msgContentTypeJSONRequired = "Content-Type must be application/json"
	msgInvalidRequestBody      = "Invalid request body"
	msgUnexpected              = "An unexpected error occurred."

	msgInvalidCredentials = "Invalid Credentials!"

	msgTaskCreated       = "Task created successfully."
	msgTaskUnexpected    = "An unexpected error occurred. Please try again later."
	msgTaskIDNotFound    = "Id not found!"
	msgTaskUpdated       = "Task Updated!"
	msgTaskInvalidStatus = "Invalid or missing status."
	msgTaskDeletedFmt    = "Task with ID %d was successfully deleted."
	msgTaskInvalidID     = "Invalid task id."

	msgUserCreated     = "User successfully created."
	msgUserUpdated     = "User updated successfully."
	msgUserDeleted     = "User deleted!"
	msgUserNotFound    = "User not found."
	msgUserNotFoundFmt = "User with ID %s not found."

	// Used when the caller carries no session on task update.
	fallbackActorRole = "User"
	fallbackActorID   = "user1"
)
