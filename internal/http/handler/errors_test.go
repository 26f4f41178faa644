package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	apperrors "task-service/pkg/errors"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapToPublicError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"malformed", apperrors.Malformed("Invalid or missing status."), http.StatusBadRequest, "Invalid or missing status."},
		{"validation", apperrors.Validation("Invalid email format."), http.StatusBadRequest, "Invalid email format."},
		{"ownership", apperrors.OwnershipViolation("You do not own this task."), http.StatusBadRequest, "You do not own this task."},
		{"conflict", apperrors.Conflict("UserName is already taken."), http.StatusBadRequest, "UserName is already taken."},
		{"not found", apperrors.NotFound("User not found."), http.StatusNotFound, "User not found."},
		{"unauthenticated", apperrors.Unauthorized("Unauthorized access."), http.StatusUnauthorized, "Unauthorized access."},
		{"invalid actor", apperrors.InvalidActor("Current user not found."), http.StatusForbidden, "Current user not found."},
		{"wrapped", fmt.Errorf("update: %w", apperrors.ForbiddenField("nope")), http.StatusBadRequest, "nope"},
		{"internal", apperrors.InternalServer("db exploded", assert.AnError), http.StatusInternalServerError, msgUnexpected},
		{"raw", assert.AnError, http.StatusInternalServerError, msgUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := MapToPublicError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMsg, msg)
		})
	}
}

func TestBindStrictJSON(t *testing.T) {
	e := echo.New()

	bind := func(contentType, body string) error {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, contentType)
		c := e.NewContext(req, httptest.NewRecorder())
		var dst LoginRequest
		return bindStrictJSON(c, &dst)
	}

	assert.NoError(t, bind("application/json; charset=utf-8", `{"username":"Jhon","password":"jhonpw"}`))

	for _, tc := range []struct{ contentType, body string }{
		{"application/json", `{"username":"Jhon","admin":true}`},
		{"application/json", `{"username":"Jhon"}{"username":"Bob"}`},
		{"application/json", `not json`},
	} {
		code, _, ok := httpErrorMessage(bind(tc.contentType, tc.body))
		require.True(t, ok, tc.body)
		assert.Equal(t, http.StatusBadRequest, code, tc.body)
	}

	code, _, ok := httpErrorMessage(bind("text/plain", `{}`))
	require.True(t, ok)
	assert.Equal(t, http.StatusUnsupportedMediaType, code)
}

func TestRespondWithMappedError(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, RespondWithMappedError(c, apperrors.NotFound("User not found.")))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{jsonKeyError: "User not found."}, body)
}

func TestBindLenientJSON(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"id":2,"userId":"user1","status":"Done"}`))
	req.Header.Set(echo.HeaderContentType, "application/json")
	c := e.NewContext(req, httptest.NewRecorder())

	var dst UpdateTaskRequest
	require.NoError(t, bindLenientJSON(c, &dst))
	require.NotNil(t, dst.Status)
	assert.Equal(t, "Done", *dst.Status)

	req = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(`{"status":"Done"} {}`))
	req.Header.Set(echo.HeaderContentType, "application/json")
	c = e.NewContext(req, httptest.NewRecorder())
	assert.Error(t, bindLenientJSON(c, &dst), "trailing data is still rejected")
}
