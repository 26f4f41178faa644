package handler

import (
	"context"
	"task-service/internal/domain/task"
	"task-service/internal/domain/user"
	"task-service/internal/policy"
	"time"

	"github.com/google/uuid"
)

// Consumer-side interfaces defined by handlers
// Each interface contains only the methods needed by the specific handler

// AuthHandler interfaces
type Authenticator interface {
	Login(ctx context.Context, username, password string) (string, time.Time, error)
}

// TaskHandler interfaces
type TaskService interface {
	GetAll(ctx context.Context) ([]*task.Task, error)
	Get(ctx context.Context, actor policy.Actor, id int) (*task.Task, error)
	Create(ctx context.Context, actor policy.Actor, t *task.Task) (int, error)
	Update(ctx context.Context, actor policy.Actor, id int, changes task.UpdateTaskInput) (*task.Task, error)
	Delete(ctx context.Context, actor policy.Actor, id int) error
}

// UserHandler interfaces
type UserService interface {
	List(ctx context.Context) ([]*user.User, error)
	Get(ctx context.Context, id uuid.UUID) (*user.User, error)
	Create(ctx context.Context, input user.CreateUserInput) (*user.User, error)
	Update(ctx context.Context, actorID string, targetID uuid.UUID, changes user.UpdateUserInput) (*user.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
