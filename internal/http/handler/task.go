package handler

import (
	"errors"
	"fmt"
	"net/http"
	"task-service/internal/domain/task"
	apperrors "task-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

type TaskHandler struct {
	tasks TaskService
}

func NewTaskHandler(tasks TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// CreateTaskRequest mirrors the task record. A missing status means "Pending".
type CreateTaskRequest struct {
	ID          int     `json:"id"`
	TaskName    *string `json:"taskName"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	UserID      string  `json:"userId"`
}

type UpdateTaskRequest struct {
	TaskName    *string `json:"taskName"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
}

func (h *TaskHandler) ListTasks(c echo.Context) error {
	tasks, err := h.tasks.GetAll(c.Request().Context())
	if err != nil {
		return RespondWithMappedError(c, err)
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *TaskHandler) CreateTask(c echo.Context) error {
	var req CreateTaskRequest
	if err := bindStrictJSON(c, &req); err != nil {
		code, msg, _ := httpErrorMessage(err)
		return respondOutcome(c, code, false, msg)
	}

	status := task.DefaultStatus
	if req.Status != nil {
		status = *req.Status
	}

	actor, _ := actorFrom(c)
	id, err := h.tasks.Create(c.Request().Context(), actor, &task.Task{
		ID:          req.ID,
		Name:        req.TaskName,
		Description: req.Description,
		Status:      status,
		OwnerID:     req.UserID,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) {
			return respondOutcome(c, http.StatusBadRequest, false, apperrors.Message(err, msgInvalidRequestBody))
		}
		return respondOutcome(c, http.StatusInternalServerError, false, msgTaskUnexpected)
	}

	return c.JSON(http.StatusOK, outcomeResponse{Success: true, Message: msgTaskCreated, TaskID: &id})
}

func (h *TaskHandler) GetTask(c echo.Context) error {
	id, ok := taskIDParam(c)
	if !ok {
		return c.String(http.StatusNotFound, msgTaskIDNotFound)
	}

	actor, _ := actorFrom(c)
	t, err := h.tasks.Get(c.Request().Context(), actor, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.String(http.StatusNotFound, msgTaskIDNotFound)
		}
		return RespondWithMappedError(c, err)
	}

	return c.JSON(http.StatusOK, t)
}

// UpdateTask keeps the legacy contract: every refused change is a 400 with
// the reason as plain text, except a caller role outside Admin/User (403).
func (h *TaskHandler) UpdateTask(c echo.Context) error {
	id, ok := taskIDParam(c)
	if !ok {
		return c.String(http.StatusBadRequest, msgTaskInvalidID)
	}

	var req UpdateTaskRequest
	if err := bindLenientJSON(c, &req); err != nil || req.Status == nil {
		return c.String(http.StatusBadRequest, msgTaskInvalidStatus)
	}

	actor := taskUpdateActor(c)
	_, err := h.tasks.Update(c.Request().Context(), actor, id, task.UpdateTaskInput{
		Name:        req.TaskName,
		Description: req.Description,
		Status:      *req.Status,
	})
	if err != nil {
		switch apperrors.KindOf(err) {
		case apperrors.KindAccessDenied:
			return c.NoContent(http.StatusForbidden)
		case apperrors.KindUnexpected:
			return c.String(http.StatusInternalServerError, msgUnexpected)
		default:
			return c.String(http.StatusBadRequest, apperrors.Message(err, err.Error()))
		}
	}

	return c.String(http.StatusOK, msgTaskUpdated)
}

func (h *TaskHandler) DeleteTask(c echo.Context) error {
	id, ok := taskIDParam(c)
	if !ok {
		return respondOutcome(c, http.StatusBadRequest, false, msgTaskInvalidID)
	}

	actor, _ := actorFrom(c)
	if err := h.tasks.Delete(c.Request().Context(), actor, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondOutcome(c, http.StatusNotFound, false, apperrors.Message(err, msgTaskIDNotFound))
		}
		return respondOutcome(c, http.StatusInternalServerError, false, msgTaskUnexpected)
	}

	return respondOutcome(c, http.StatusOK, true, fmt.Sprintf(msgTaskDeletedFmt, id))
}
