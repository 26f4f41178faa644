package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"task-service/internal/auth"
	"task-service/internal/policy"
	"task-service/internal/rbac"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contentTypeJSON          = "application/json"
	maxStrictBodyBytes int64 = 1 << 20 // Keep parser bound aligned with global body limit.
)

func bindStrictJSON(c echo.Context, dst interface{}) error {
	return bindJSON(c, dst, true)
}

// bindLenientJSON skips unknown fields, so clients may send a whole record
// back when only some of it is read.
func bindLenientJSON(c echo.Context, dst interface{}) error {
	return bindJSON(c, dst, false)
}

func bindJSON(c echo.Context, dst interface{}, rejectUnknown bool) error {
	if !strings.HasPrefix(strings.ToLower(c.Request().Header.Get(echo.HeaderContentType)), contentTypeJSON) {
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, msgContentTypeJSONRequired)
	}

	body := io.LimitReader(c.Request().Body, maxStrictBodyBytes)
	decoder := json.NewDecoder(body)
	if rejectUnknown {
		decoder.DisallowUnknownFields()
	}

	if err := decoder.Decode(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidRequestBody)
	}

	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return echo.NewHTTPError(http.StatusBadRequest, msgInvalidRequestBody)
	}

	return nil
}

func taskIDParam(c echo.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	return id, err == nil
}

func userIDParam(c echo.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	return id, err == nil
}

// actorFrom returns the authenticated caller, if any.
func actorFrom(c echo.Context) (policy.Actor, bool) {
	p, err := auth.GetPrincipal(c)
	if err != nil {
		return policy.Actor{}, false
	}
	return policy.Actor{ID: p.ID, Role: p.Role}, true
}

// taskUpdateActor applies the legacy claim defaults per claim: a missing
// session, or a session whose token carries no role, acts as User "user1"
// for the missing part.
// TODO: reject anonymous task updates once clients always send a token.
func taskUpdateActor(c echo.Context) policy.Actor {
	actor, _ := actorFrom(c)
	if actor.ID == "" {
		actor.ID = fallbackActorID
	}
	if actor.Role == "" {
		actor.Role = rbac.Role(fallbackActorRole)
	}
	return actor
}
