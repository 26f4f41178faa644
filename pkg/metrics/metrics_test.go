package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_CountsRequests(t *testing.T) {
	m := New("test")
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/tasks/:id", func(c echo.Context) error {
		return c.String(http.StatusNotFound, "Id not found!")
	})

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/tasks/7", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}

	assert.Equal(t, float64(2), testutil.ToFloat64(m.requestsTotal.WithLabelValues(http.MethodGet, "/api/tasks/:id", "404")))
	assert.Equal(t, float64(0), testutil.ToFloat64(m.requestsInFlight))
}

func TestObserveDecisions(t *testing.T) {
	m := New("")
	m.ObserveGateDecision("tasks.create", "forbidden")
	m.ObserveGateDecision("tasks.create", "forbidden")
	m.ObservePolicyDecision("task", "ownership_violation")
	m.ObserveLogin("success")

	assert.Equal(t, float64(2), testutil.ToFloat64(m.gateDecisions.WithLabelValues("tasks.create", "forbidden")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.policyDecisions.WithLabelValues("task", "ownership_violation")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.logins.WithLabelValues("success")))
}

func TestRegisterMetricsRoute(t *testing.T) {
	m := New("test")
	m.ObserveLogin("failure")

	e := echo.New()
	m.RegisterMetricsRoute(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `test_auth_logins_total{result="failure"} 1`))
}
