package http

import (
	"errors"
	"fmt"
	"net/http"
	"task-service/internal/http/handler"
	"task-service/internal/http/middleware"
	"task-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// NewHTTPErrorHandler handles every error returned by handlers and middleware.
// echo errors keep their status; service errors go through the handler
// package's public mapping, so internal detail only reaches the log.
func NewHTTPErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("http")

	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			code    int
			message string
		)

		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
			message = fmt.Sprintf("%v", httpErr.Message)
		} else {
			code, message = handler.MapToPublicError(err)
		}

		requestID := middleware.GetRequestID(c)
		if code >= http.StatusInternalServerError {
			log.Error("internal_server_error",
				zap.String("request_id", requestID),
				zap.Int("status", code),
				logger.Error(err),
			)
		} else {
			log.Debug("client_error",
				zap.String("request_id", requestID),
				zap.Int("status", code),
				logger.Error(err),
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, map[string]string{"error": message})
		}
		if err != nil {
			log.Error("failed to write error response", logger.Error(err))
		}
	}
}
