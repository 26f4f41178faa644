package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{jsonKeyError: message})
}

func respondMessage(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{jsonKeyMessage: message})
}

// outcomeResponse is the {success, message} envelope used by task endpoints.
type outcomeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	TaskID  *int   `json:"taskId,omitempty"`
}

func respondOutcome(c echo.Context, status int, success bool, message string) error {
	return c.JSON(status, outcomeResponse{Success: success, Message: message})
}

func httpErrorMessage(err error) (int, string, bool) {
	he, ok := err.(*echo.HTTPError)
	if !ok {
		return 0, "", false
	}
	msg, _ := he.Message.(string)
	if msg == "" {
		msg = http.StatusText(he.Code)
	}
	return he.Code, msg, true
}

func handleHTTPError(c echo.Context, err error) error {
	if code, msg, ok := httpErrorMessage(err); ok {
		return respondError(c, code, msg)
	}

	return respondError(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
