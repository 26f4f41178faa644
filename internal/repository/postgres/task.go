package postgres

import (
	"context"
	"errors"
	"fmt"
	"task-service/internal/domain/task"
	"task-service/internal/repository"
	apperrors "task-service/pkg/errors"

	"github.com/jackc/pgx/v5"
)

const taskColumns = "id, task_name, description, status, user_id"

type TaskRepository struct {
	db *DB
}

func NewTaskRepository(db *DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func scanTask(row pgx.Row) (*task.Task, error) {
	t := &task.Task{}
	err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.Status,
		&t.OwnerID,
	)
	return t, err
}

func (r *TaskRepository) List(ctx context.Context) ([]*task.Task, error) {
	query := "SELECT " + taskColumns + " FROM tasks ORDER BY id"

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, errFailedListTasks(err)
	}
	defer rows.Close()

	tasks := []*task.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, errFailedScanTask(err)
		}
		tasks = append(tasks, t)
	}

	if err := rows.Err(); err != nil {
		return nil, errIterateTasks(err)
	}

	return tasks, nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id int) (*task.Task, error) {
	query := "SELECT " + taskColumns + " FROM tasks WHERE id = $1"

	t, err := scanTask(r.db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound(repository.MsgTaskNotFound)
		}
		return nil, errFailedGetTask(err)
	}

	return t, nil
}

func (r *TaskRepository) Create(ctx context.Context, t *task.Task) (int, error) {
	if t.ID == 0 {
		query := `
			INSERT INTO tasks (task_name, description, status, user_id)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`
		var id int
		if err := r.db.Pool.QueryRow(ctx, query, t.Name, t.Description, t.Status, t.OwnerID).Scan(&id); err != nil {
			return 0, errFailedCreateTask(err)
		}
		return id, nil
	}

	// An explicit id bypasses the serial, so move the sequence past it.
	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO tasks (id, task_name, description, status, user_id)
			VALUES ($1, $2, $3, $4, $5)
		`
		if _, err := tx.Exec(ctx, query, t.ID, t.Name, t.Description, t.Status, t.OwnerID); err != nil {
			if isUniqueViolation(err) {
				return apperrors.InvalidInput(fmt.Sprintf(repository.MsgTaskIDTakenFmt, t.ID))
			}
			return errFailedCreateTask(err)
		}

		seq := `SELECT setval(pg_get_serial_sequence('tasks', 'id'), GREATEST((SELECT MAX(id) FROM tasks), 1))`
		if _, err := tx.Exec(ctx, seq); err != nil {
			return errFailedSyncTaskSeq(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return t.ID, nil
}

func (r *TaskRepository) Update(ctx context.Context, id int, mutate repository.TaskMutator) (*task.Task, error) {
	var updated *task.Task

	err := r.db.inTx(ctx, func(tx pgx.Tx) error {
		query := "SELECT " + taskColumns + " FROM tasks WHERE id = $1 FOR UPDATE"

		t, err := scanTask(tx.QueryRow(ctx, query, id))
		if errors.Is(err, pgx.ErrNoRows) {
			if err := mutate(nil); err != nil {
				return err
			}
			return apperrors.NotFound(repository.MsgTaskNotFound)
		}
		if err != nil {
			return errFailedGetTask(err)
		}

		if err := mutate(t); err != nil {
			return err
		}
		t.ID = id

		update := `
			UPDATE tasks
			SET task_name = $2, description = $3, status = $4, user_id = $5
			WHERE id = $1
		`
		if _, err := tx.Exec(ctx, update, id, t.Name, t.Description, t.Status, t.OwnerID); err != nil {
			return errFailedUpdateTask(err)
		}

		updated = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int) error {
	query := "DELETE FROM tasks WHERE id = $1"

	result, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return errFailedDeleteTask(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(repository.MsgTaskNotFound)
	}

	return nil
}

func (r *TaskRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM tasks").Scan(&n); err != nil {
		return 0, errFailedCountTasks(err)
	}
	return n, nil
}
