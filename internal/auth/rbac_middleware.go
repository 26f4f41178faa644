package auth

import (
	"fmt"
	"net/http"
	"strings"
	"task-service/internal/rbac"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// DecisionRecorder counts gate outcomes per operation.
type DecisionRecorder interface {
	ObserveGateDecision(operation, decision string)
}

// Gate enforces the coarse per-operation role requirement before a handler
// runs. It never looks at request bodies or resource ownership.
type Gate struct {
	checker  *rbac.Checker
	tokens   *TokenService
	logger   *zap.Logger
	recorder DecisionRecorder
}

func NewGate(checker *rbac.Checker, tokens *TokenService, log *zap.Logger, recorder DecisionRecorder) *Gate {
	if log == nil {
		log = zap.NewNop()
	}
	return &Gate{
		checker:  checker,
		tokens:   tokens,
		logger:   log.Named("gate"),
		recorder: recorder,
	}
}

// Require returns middleware enforcing the roles declared for op. It panics
// when op is missing from the table, so a mistyped route fails at startup.
func (g *Gate) Require(op rbac.Operation) echo.MiddlewareFunc {
	required, err := g.checker.Required(op)
	if err != nil {
		panic(fmt.Sprintf("auth.Gate.Require: %v", err))
	}
	forbiddenMsg := forbiddenMessage(required)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if len(required) == 0 {
				g.record(op, decisionPublic)
				return next(c)
			}

			principal, err := GetPrincipal(c)
			if err != nil {
				if token := extractBearerToken(c); token != "" && g.tokens.IsExpired(token) {
					g.record(op, decisionExpired)
					return respondError(c, http.StatusUnauthorized, msgTokenExpired)
				}
				g.record(op, decisionUnauthenticated)
				return respondError(c, http.StatusUnauthorized, msgUnauthorized)
			}

			if err := g.checker.Allows(op, principal.Role); err != nil {
				g.record(op, decisionForbidden)
				g.logger.Warn("role mismatch",
					zap.String("operation", string(op)),
					zap.String("user_id", principal.ID),
					zap.String("role", string(principal.Role)),
					zap.Error(err),
				)
				return respondError(c, http.StatusForbidden, forbiddenMsg)
			}

			g.record(op, decisionAllowed)
			return next(c)
		}
	}
}

func (g *Gate) record(op rbac.Operation, decision string) {
	if g.recorder != nil {
		g.recorder.ObserveGateDecision(string(op), decision)
	}
}

func forbiddenMessage(required rbac.RoleSet) string {
	names := make([]string, len(required))
	for i, r := range required {
		names[i] = string(r)
	}
	return fmt.Sprintf(msgForbiddenRoleFmt, strings.Join(names, " or "))
}
