// Package memory keeps users and tasks in process memory. It is the default
// backend and the one the tests run against.
package memory

import (
	"context"
	"crypto/subtle"
	"sync"
	"task-service/internal/domain/task"
	"task-service/internal/domain/user"
	"task-service/internal/repository"

	"github.com/google/uuid"
)

var _ repository.Store = (*Store)(nil)

// Store guards both tables with one RWMutex. Each Update runs its mutator
// under the write lock, so a read-modify-write is atomic.
type Store struct {
	mu         sync.RWMutex
	users      map[uuid.UUID]*user.User
	userOrder  []uuid.UUID
	tasks      map[int]*task.Task
	taskOrder  []int
	nextTaskID int

	userRepo *UserRepository
	taskRepo *TaskRepository
}

func New() *Store {
	s := &Store{
		users:      make(map[uuid.UUID]*user.User),
		tasks:      make(map[int]*task.Task),
		nextTaskID: 1,
	}
	s.userRepo = &UserRepository{s: s}
	s.taskRepo = &TaskRepository{s: s}
	return s
}

func (s *Store) Users() repository.UserRepository { return s.userRepo }
func (s *Store) Tasks() repository.TaskRepository { return s.taskRepo }

func (s *Store) Ping(ctx context.Context) error { return ctx.Err() }

func (s *Store) Close() {}

func secretsEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

func removeID[T comparable](ids []T, id T) []T {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
