package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"task-service/internal/audit"
	"task-service/internal/domain/task"
	"task-service/internal/policy"
	"task-service/internal/repository"
	apperrors "task-service/pkg/errors"
	"task-service/pkg/logger"
	"task-service/pkg/validator"

	"go.uber.org/zap"
)

type TaskService struct {
	tasks    repository.TaskRepository
	audit    *audit.Logger
	logger   *zap.Logger
	recorder PolicyRecorder
}

func NewTaskService(tasks repository.TaskRepository, auditLog *audit.Logger, log *zap.Logger, recorder PolicyRecorder) *TaskService {
	if log == nil {
		log = zap.NewNop()
	}
	return &TaskService{
		tasks:    tasks,
		audit:    auditLog,
		logger:   log.Named("tasks"),
		recorder: recorder,
	}
}

// GetAll returns every task. Callers are gated to Admin before reaching here.
func (s *TaskService) GetAll(ctx context.Context) ([]*task.Task, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, wrapUnexpected(err)
	}
	return tasks, nil
}

// Get returns the task when actor may see it. A task the actor may not see
// is reported as not found so its existence is not disclosed.
func (s *TaskService) Get(ctx context.Context, actor policy.Actor, id int) (*task.Task, error) {
	t, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, wrapUnexpected(err)
	}

	if !policy.CanViewTask(actor, t) {
		s.logger.Warn("task hidden from caller",
			zap.Int("task_id", id),
			zap.String("user_id", actor.ID),
			zap.String("role", string(actor.Role)),
		)
		s.audit.Log(ctx, audit.Event{
			ActorID:      actor.ID,
			ActorRole:    string(actor.Role),
			ResourceType: audit.ResourceTypeTask,
			ResourceID:   strconv.Itoa(id),
			Action:       audit.ActionRead,
			Status:       audit.StatusDenied,
		})
		return nil, apperrors.NotFound(fmt.Sprintf(msgTaskNotFoundFmt, id))
	}

	return t, nil
}

// Create validates t and stores it, returning the assigned id.
func (s *TaskService) Create(ctx context.Context, actor policy.Actor, t *task.Task) (int, error) {
	if err := validateNewTask(t); err != nil {
		s.logger.Info("task rejected", zap.String("reason", apperrors.Message(err, "")))
		return 0, err
	}

	id, err := s.tasks.Create(ctx, t)
	if err != nil {
		if !isExpected(err) {
			s.logger.Error("task create failed", logger.Error(err))
		}
		return 0, wrapUnexpected(err)
	}

	s.logger.Info("task created", zap.Int("task_id", id), zap.String("owner_id", t.OwnerID))
	s.audit.Log(ctx, audit.Event{
		ActorID:      actor.ID,
		ActorRole:    string(actor.Role),
		ResourceType: audit.ResourceTypeTask,
		ResourceID:   strconv.Itoa(id),
		Action:       audit.ActionCreate,
		Status:       audit.StatusSuccess,
	})

	return id, nil
}

// Update applies changes on behalf of actor inside a single store update.
// Only the blank-status and role checks run before the store is touched;
// accepted values are stored exactly as supplied.
func (s *TaskService) Update(ctx context.Context, actor policy.Actor, id int, changes task.UpdateTaskInput) (*task.Task, error) {
	if err := policy.AuthorizeTaskUpdate(actor, changes); err != nil {
		s.finishUpdate(ctx, actor, id, err)
		return nil, err
	}

	updated, err := s.tasks.Update(ctx, id, func(t *task.Task) error {
		return policy.ApplyTaskUpdate(actor, t, changes)
	})
	err = wrapUnexpected(err)
	s.finishUpdate(ctx, actor, id, err)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *TaskService) finishUpdate(ctx context.Context, actor policy.Actor, id int, err error) {
	if s.recorder != nil {
		s.recorder.ObservePolicyDecision(resourceTask, outcome(err))
	}

	event := audit.Event{
		ActorID:      actor.ID,
		ActorRole:    string(actor.Role),
		ResourceType: audit.ResourceTypeTask,
		ResourceID:   strconv.Itoa(id),
		Action:       audit.ActionUpdate,
		Status:       audit.StatusSuccess,
	}

	switch {
	case err == nil:
		s.logger.Info("task updated", zap.Int("task_id", id), zap.String("user_id", actor.ID))
	case isExpected(err):
		event.Status = audit.StatusDenied
		event.Reason = apperrors.Message(err, err.Error())
		s.logger.Warn("task update refused",
			zap.Int("task_id", id),
			zap.String("user_id", actor.ID),
			zap.String("role", string(actor.Role)),
			zap.String("kind", string(apperrors.KindOf(err))),
		)
	default:
		event.Status = audit.StatusFailure
		s.logger.Error("task update failed", zap.Int("task_id", id), logger.Error(err))
	}

	s.audit.Log(ctx, event)
}

// Delete removes the task or reports "Task with ID <id> not found.".
func (s *TaskService) Delete(ctx context.Context, actor policy.Actor, id int) error {
	if err := s.tasks.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.logger.Warn("delete of missing task", zap.Int("task_id", id))
			return apperrors.NotFound(fmt.Sprintf(msgTaskNotFoundFmt, id))
		}
		s.logger.Error("task delete failed", zap.Int("task_id", id), logger.Error(err))
		return wrapUnexpected(err)
	}

	s.logger.Info("task deleted", zap.Int("task_id", id))
	s.audit.Log(ctx, audit.Event{
		ActorID:      actor.ID,
		ActorRole:    string(actor.Role),
		ResourceType: audit.ResourceTypeTask,
		ResourceID:   strconv.Itoa(id),
		Action:       audit.ActionDelete,
		Status:       audit.StatusSuccess,
	})
	return nil
}

func validateNewTask(t *task.Task) error {
	if t == nil || t.Name == nil || isBlank(*t.Name) {
		return apperrors.InvalidInput(msgTaskNameRequired)
	}
	if isBlank(t.Status) {
		return apperrors.InvalidInput(msgTaskStatusRequired)
	}
	if isBlank(t.OwnerID) {
		return apperrors.InvalidInput(msgTaskOwnerRequired)
	}
	if t.ID < 0 {
		return apperrors.InvalidInput(msgTaskIDNegative)
	}
	if t.ID > maxTaskID {
		return apperrors.InvalidInput(fmt.Sprintf(msgTaskIDTooLargeFmt, maxTaskID))
	}

	if err := validator.TaskName(*t.Name); err != nil {
		return apperrors.InvalidInput(err.Error())
	}
	if t.Description != nil {
		if err := validator.Description(*t.Description); err != nil {
			return apperrors.InvalidInput(err.Error())
		}
	}
	if err := validator.Status(t.Status); err != nil {
		return apperrors.InvalidInput(err.Error())
	}
	return nil
}
