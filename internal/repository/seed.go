package repository

import (
	"context"
	"fmt"
	"task-service/internal/domain/task"
	"task-service/internal/domain/user"
	"task-service/internal/rbac"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Fixed ids of the seeded identities. Task 3 points at seedOrphanOwnerID,
// which has no user row.
var (
	SeedAdminID       = uuid.MustParse("61c26ccd-dfb0-4f39-820c-067db886a858")
	SeedUserID        = uuid.MustParse("61c26ccd-dfb0-4f39-820c-067db886a859")
	seedOrphanOwnerID = uuid.MustParse("61c26ccd-dfb0-4f39-820c-067db886a860")
)

func strPtr(s string) *string { return &s }

// SeedUsers returns the default identities: one Admin and one User.
func SeedUsers() []*user.User {
	return []*user.User{
		{
			ID:       SeedAdminID,
			UserName: "Jhon",
			Password: "jhonpw",
			Email:    "jhon@gmail.com",
			Phone:    strPtr("+974-10101011"),
			Role:     rbac.RoleAdmin,
		},
		{
			ID:       SeedUserID,
			UserName: "Bob",
			Password: "bobpw",
			Email:    "bob@gmail.com",
			Phone:    strPtr("+974-10101022"),
			Role:     rbac.RoleUser,
		},
	}
}

// SeedTasks returns the default tasks.
func SeedTasks() []*task.Task {
	return []*task.Task{
		{ID: 1, Name: strPtr("Adminstration"), Description: strPtr("Prepare Report"), Status: "Pending", OwnerID: SeedAdminID.String()},
		{ID: 2, Name: strPtr("Development"), Description: strPtr("Development of Web Application"), Status: "Active", OwnerID: SeedUserID.String()},
		{ID: 3, Name: strPtr("Hiring"), Description: strPtr("Hire Resources"), Status: "InActive", OwnerID: seedOrphanOwnerID.String()},
	}
}

// Seed loads the default users and tasks into an empty store. A store that
// already holds users or tasks is left untouched.
func Seed(ctx context.Context, store Store, log *zap.Logger) error {
	if log == nil {
		log = zap.NewNop()
	}

	users, err := store.Users().Count(ctx)
	if err != nil {
		return fmt.Errorf(errCountForSeedFmt, err)
	}
	tasks, err := store.Tasks().Count(ctx)
	if err != nil {
		return fmt.Errorf(errCountForSeedFmt, err)
	}
	if users > 0 || tasks > 0 {
		log.Info("store not empty, skipping seed", zap.Int("users", users), zap.Int("tasks", tasks))
		return nil
	}

	for _, u := range SeedUsers() {
		if err := store.Users().Create(ctx, u); err != nil {
			return fmt.Errorf(errSeedUserFmt, u.UserName, err)
		}
	}
	for _, t := range SeedTasks() {
		if _, err := store.Tasks().Create(ctx, t); err != nil {
			return fmt.Errorf(errSeedTaskFmt, t.ID, err)
		}
	}

	log.Info("seed data loaded", zap.Int("users", len(SeedUsers())), zap.Int("tasks", len(SeedTasks())))
	return nil
}
