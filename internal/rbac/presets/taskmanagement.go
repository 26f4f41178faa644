package presets

import "task-service/internal/rbac"

const (
	OpLogin rbac.Operation = "auth.login"

	OpTaskCreate rbac.Operation = "tasks.create"
	OpTaskGet    rbac.Operation = "tasks.get"
	OpTaskUpdate rbac.Operation = "tasks.update"
	OpTaskDelete rbac.Operation = "tasks.delete"
	OpTaskList   rbac.Operation = "tasks.list"

	OpUserList   rbac.Operation = "users.list"
	OpUserCreate rbac.Operation = "users.create"
	OpUserGet    rbac.Operation = "users.get"
	OpUserUpdate rbac.Operation = "users.update"
	OpUserDelete rbac.Operation = "users.delete"
)

// TaskManagement returns the operation table for the task service.
// Task update is deliberately ungated: the handler branches on the caller's role.
func TaskManagement() rbac.Config {
	adminOnly := rbac.RoleSet{rbac.RoleAdmin}
	anyRole := rbac.RoleSet{rbac.RoleAdmin, rbac.RoleUser}

	return rbac.Config{
		Requirements: []rbac.Requirement{
			{Operation: OpLogin},

			{Operation: OpTaskCreate, Roles: adminOnly},
			{Operation: OpTaskGet, Roles: anyRole},
			{Operation: OpTaskUpdate},
			{Operation: OpTaskDelete, Roles: adminOnly},
			{Operation: OpTaskList, Roles: adminOnly},

			{Operation: OpUserList},
			{Operation: OpUserCreate},
			{Operation: OpUserGet},
			{Operation: OpUserUpdate},
			{Operation: OpUserDelete},
		},
	}
}
