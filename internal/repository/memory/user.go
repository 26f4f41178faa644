package memory

import (
	"context"
	"task-service/internal/domain/user"
	"task-service/internal/repository"
	apperrors "task-service/pkg/errors"

	"github.com/google/uuid"
)

type UserRepository struct {
	s *Store
}

func (r *UserRepository) List(ctx context.Context) ([]*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]*user.User, 0, len(r.s.userOrder))
	for _, id := range r.s.userOrder {
		users = append(users, r.s.users[id].Clone())
	}
	return users, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, apperrors.NotFound(repository.MsgUserNotFound)
	}
	return u.Clone(), nil
}

// GetByCredentials matches username exactly and password in constant time.
func (r *UserRepository) GetByCredentials(ctx context.Context, username, password string) (*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, id := range r.s.userOrder {
		u := r.s.users[id]
		if u.UserName == username && secretsEqual(u.Password, password) {
			return u.Clone(), nil
		}
	}
	return nil, apperrors.InvalidCredentials()
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.users[u.ID]; exists {
		return apperrors.Conflict("user with this id already exists")
	}
	if r.nameTakenLocked(u.UserName, uuid.Nil) {
		return apperrors.Conflict(repository.MsgUserNameTaken)
	}

	r.s.users[u.ID] = u.Clone()
	r.s.userOrder = append(r.s.userOrder, u.ID)
	return nil
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, mutate repository.UserMutator) (*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.users[id]
	if !ok {
		if err := mutate(nil); err != nil {
			return nil, err
		}
		return nil, apperrors.NotFound(repository.MsgUserNotFound)
	}

	working := current.Clone()
	if err := mutate(working); err != nil {
		return nil, err
	}
	working.ID = id

	if working.UserName != current.UserName && r.nameTakenLocked(working.UserName, id) {
		return nil, apperrors.Conflict(repository.MsgUserNameTaken)
	}

	r.s.users[id] = working
	return working.Clone(), nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return apperrors.NotFound(repository.MsgUserNotFound)
	}
	delete(r.s.users, id)
	r.s.userOrder = removeID(r.s.userOrder, id)
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.users), nil
}

func (r *UserRepository) nameTakenLocked(name string, except uuid.UUID) bool {
	for id, u := range r.s.users {
		if id != except && u.UserName == name {
			return true
		}
	}
	return false
}
