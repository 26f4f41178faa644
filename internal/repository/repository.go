package repository

import (
	"context"
	"task-service/internal/domain/task"
	"task-service/internal/domain/user"

	"github.com/google/uuid"
)

// UserMutator edits a user inside a store transaction. It receives nil when
// the user does not exist; returning nil then makes the store report not-found.
type UserMutator func(u *user.User) error

// TaskMutator is the task counterpart of UserMutator.
type TaskMutator func(t *task.Task) error

// UserRepository defines user data access operations
type UserRepository interface {
	List(ctx context.Context) ([]*user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetByCredentials(ctx context.Context, username, password string) (*user.User, error)
	Create(ctx context.Context, u *user.User) error
	Update(ctx context.Context, id uuid.UUID, mutate UserMutator) (*user.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

// TaskRepository defines task data access operations
type TaskRepository interface {
	List(ctx context.Context) ([]*task.Task, error)
	GetByID(ctx context.Context, id int) (*task.Task, error)
	// Create persists t and returns its id. A zero ID is replaced by the next
	// free one; a supplied ID that is already taken is rejected.
	Create(ctx context.Context, t *task.Task) (int, error)
	Update(ctx context.Context, id int, mutate TaskMutator) (*task.Task, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context) (int, error)
}
