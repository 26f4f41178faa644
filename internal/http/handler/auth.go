package handler

import (
	"errors"
	"net/http"
	apperrors "task-service/pkg/errors"

	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	auth Authenticator
}

func NewAuthHandler(auth Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindStrictJSON(c, &req); err != nil {
		return handleHTTPError(c, err)
	}

	token, _, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return respondError(c, http.StatusUnauthorized, msgInvalidCredentials)
		}
		return respondError(c, http.StatusInternalServerError, msgUnexpected)
	}

	return c.JSON(http.StatusOK, LoginResponse{Token: token})
}
