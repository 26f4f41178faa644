package handler

import (
	"errors"
	"fmt"
	"net/http"
	"task-service/internal/auth"
	"task-service/internal/domain/user"
	"task-service/internal/rbac"
	apperrors "task-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	users UserService
}

func NewUserHandler(users UserService) *UserHandler {
	return &UserHandler{users: users}
}

type CreateUserRequest struct {
	UserName  string  `json:"userName"`
	Password  string  `json:"password"`
	UserEmail string  `json:"userEmail"`
	Phone     *string `json:"phone"`
	Role      string  `json:"role"`
}

type UpdateUserRequest struct {
	UserName  *string `json:"userName"`
	Role      *string `json:"role"`
	Password  *string `json:"password"`
	UserEmail *string `json:"userEmail"`
	Phone     *string `json:"phone"`
}

type CreateUserResponse struct {
	Message     string     `json:"message"`
	CreatedUser *user.User `json:"createdUser"`
}

type UpdateUserResponse struct {
	Message     string     `json:"message"`
	UpdatedUser *user.User `json:"updatedUser"`
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.users.List(c.Request().Context())
	if err != nil {
		return RespondWithMappedError(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	u, err := h.users.Create(c.Request().Context(), user.CreateUserInput{
		UserName: req.UserName,
		Password: req.Password,
		Email:    req.UserEmail,
		Phone:    req.Phone,
		Role:     rbac.Role(req.Role),
	})
	if err != nil {
		return RespondWithMappedError(c, err)
	}

	c.Response().Header().Set(headerLocation, fmt.Sprintf(usersPathFmt, u.ID))
	return c.JSON(http.StatusCreated, CreateUserResponse{Message: msgUserCreated, CreatedUser: u})
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id, ok := userIDParam(c)
	if !ok {
		return c.NoContent(http.StatusNotFound)
	}

	u, err := h.users.Get(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.NoContent(http.StatusNotFound)
		}
		return RespondWithMappedError(c, err)
	}

	return c.JSON(http.StatusOK, u)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	var req UpdateUserRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	id, ok := userIDParam(c)
	if !ok {
		return respondError(c, http.StatusNotFound, msgUserNotFound)
	}

	var actorID string
	if p, err := auth.GetPrincipal(c); err == nil {
		actorID = p.ID
	}

	updated, err := h.users.Update(c.Request().Context(), actorID, id, user.UpdateUserInput{
		UserName: req.UserName,
		Role:     req.Role,
		Password: req.Password,
		Email:    req.UserEmail,
		Phone:    req.Phone,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondError(c, http.StatusNotFound, msgUserNotFound)
		}
		return RespondWithMappedError(c, err)
	}

	return c.JSON(http.StatusOK, UpdateUserResponse{Message: msgUserUpdated, UpdatedUser: updated})
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, ok := userIDParam(c)
	if !ok {
		return respondError(c, http.StatusNotFound, fmt.Sprintf(msgUserNotFoundFmt, c.Param("id")))
	}

	if err := h.users.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return respondError(c, http.StatusNotFound, apperrors.Message(err, msgUserNotFound))
		}
		return RespondWithMappedError(c, err)
	}

	return respondMessage(c, http.StatusOK, msgUserDeleted)
}
