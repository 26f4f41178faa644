package memory

import (
	"context"
	"fmt"
	"task-service/internal/domain/task"
	"task-service/internal/repository"
	apperrors "task-service/pkg/errors"
)

type TaskRepository struct {
	s *Store
}

func (r *TaskRepository) List(ctx context.Context) ([]*task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	tasks := make([]*task.Task, 0, len(r.s.taskOrder))
	for _, id := range r.s.taskOrder {
		tasks = append(tasks, r.s.tasks[id].Clone())
	}
	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id int) (*task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	t, ok := r.s.tasks[id]
	if !ok {
		return nil, apperrors.NotFound(repository.MsgTaskNotFound)
	}
	return t.Clone(), nil
}

func (r *TaskRepository) Create(ctx context.Context, t *task.Task) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := t.Clone()
	if stored.ID == 0 {
		for {
			if _, taken := r.s.tasks[r.s.nextTaskID]; !taken {
				break
			}
			r.s.nextTaskID++
		}
		stored.ID = r.s.nextTaskID
	} else if _, taken := r.s.tasks[stored.ID]; taken {
		return 0, apperrors.InvalidInput(fmt.Sprintf(repository.MsgTaskIDTakenFmt, stored.ID))
	}

	if stored.ID >= r.s.nextTaskID {
		r.s.nextTaskID = stored.ID + 1
	}

	r.s.tasks[stored.ID] = stored
	r.s.taskOrder = append(r.s.taskOrder, stored.ID)
	return stored.ID, nil
}

func (r *TaskRepository) Update(ctx context.Context, id int, mutate repository.TaskMutator) (*task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.tasks[id]
	if !ok {
		if err := mutate(nil); err != nil {
			return nil, err
		}
		return nil, apperrors.NotFound(repository.MsgTaskNotFound)
	}

	working := current.Clone()
	if err := mutate(working); err != nil {
		return nil, err
	}
	working.ID = id

	r.s.tasks[id] = working
	return working.Clone(), nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.tasks[id]; !ok {
		return apperrors.NotFound(repository.MsgTaskNotFound)
	}
	delete(r.s.tasks, id)
	r.s.taskOrder = removeID(r.s.taskOrder, id)
	return nil
}

func (r *TaskRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.tasks), nil
}
