package auth

import (
	"strings"
	"task-service/internal/rbac"
	apperrors "task-service/pkg/errors"
	"task-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type Middleware struct {
	tokens *TokenService
	logger *zap.Logger
}

func NewMiddleware(tokens *TokenService, log *zap.Logger) *Middleware {
	if log == nil {
		log = zap.NewNop()
	}
	return &Middleware{
		tokens: tokens,
		logger: log.Named("auth"),
	}
}

// Authenticate resolves a session from the bearer token when one is present
// and valid. It never rejects: routes decide through the Gate whether a
// session is required.
func (m *Middleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractBearerToken(c)
			if token == "" {
				return next(c)
			}

			principal, err := m.tokens.Validate(token)
			if err != nil {
				m.logger.Debug("bearer token rejected", logger.Error(err))
				return next(c)
			}

			c.Set(ContextKeyPrincipal, principal)

			return next(c)
		}
	}
}

func extractBearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get(headerAuthorization)
	if authHeader == "" {
		return ""
	}

	parts := strings.Fields(authHeader)
	if len(parts) != authHeaderParts || strings.ToLower(parts[0]) != bearerScheme {
		return ""
	}

	return parts[1]
}

func GetPrincipal(c echo.Context) (*Principal, error) {
	raw := c.Get(ContextKeyPrincipal)
	if raw == nil {
		return nil, apperrors.Unauthorized(msgUserNotAuthenticated)
	}

	p, ok := raw.(*Principal)
	if !ok || p == nil {
		return nil, apperrors.InternalServer(msgInvalidPrincipalCtx, nil)
	}

	return p, nil
}

func GetUserID(c echo.Context) (string, error) {
	p, err := GetPrincipal(c)
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

func GetRole(c echo.Context) (rbac.Role, error) {
	p, err := GetPrincipal(c)
	if err != nil {
		return "", err
	}
	return p.Role, nil
}

func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{jsonKeyError: message})
}
