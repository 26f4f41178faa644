package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"task-service/internal/auth"
	"task-service/internal/config"
	"task-service/internal/http/handler"
	"task-service/internal/http/middleware"
	"task-service/internal/rbac"
	"task-service/internal/rbac/presets"
	"task-service/pkg/metrics"
	"task-service/pkg/profiling"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

const (
	jsonKeyStatus    = "status"
	statusOK         = "ok"
	statusDegraded   = "unavailable"
	requestBodyLimit = "1M"
	healthTimeout    = 2 * time.Second
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type ServerDependencies struct {
	Config       *config.Config
	Logger       *zap.Logger
	Metrics      *metrics.Metrics
	Checker      *rbac.Checker
	TokenService *auth.TokenService
	AuthService  handler.Authenticator
	TaskService  handler.TaskService
	UserService  handler.UserService
	Store        Pinger
}

type Server struct {
	echo     *echo.Echo
	deps     *ServerDependencies
	limiters []*middleware.RateLimiter
}

func NewServer(deps *ServerDependencies) *Server {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Server.ReadTimeout = deps.Config.Server.ReadTimeout
	e.Server.WriteTimeout = deps.Config.Server.WriteTimeout

	// Request ID middleware (first, so all logs have request ID)
	e.Use(middleware.RequestID())
	e.Use(middleware.SecurityHeaders())
	e.Use(middleware.RequestLogger(log))
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.BodyLimit(requestBodyLimit))
	if deps.Metrics != nil {
		e.Use(deps.Metrics.Middleware())
	}

	// Sessions are resolved before rate limiting so callers are keyed by id.
	e.Use(auth.NewMiddleware(deps.TokenService, log).Authenticate())
	globalRateLimiter := middleware.NewGlobalRateLimiter()
	e.Use(globalRateLimiter.Middleware())

	loginRateLimiter := middleware.NewLoginRateLimiter(
		float64(deps.Config.App.LoginRateLimitRPS),
		deps.Config.App.LoginRateLimitBurst,
	)

	var recorder auth.DecisionRecorder
	if deps.Metrics != nil {
		recorder = deps.Metrics
	}
	gate := auth.NewGate(deps.Checker, deps.TokenService, log, recorder)

	authHandler := handler.NewAuthHandler(deps.AuthService)
	taskHandler := handler.NewTaskHandler(deps.TaskService)
	userHandler := handler.NewUserHandler(deps.UserService)

	e.GET("/health", healthCheck(deps.Store))
	if deps.Metrics != nil {
		deps.Metrics.RegisterMetricsRoute(e)
	}
	if deps.Config.App.EnableProfiling {
		profiling.RegisterPprofRoutes(e)
	}

	api := e.Group("/api")

	api.POST("/auth/login", authHandler.Login, loginRateLimiter.Middleware(), gate.Require(presets.OpLogin))

	api.GET("/tasks", taskHandler.ListTasks, gate.Require(presets.OpTaskList))
	api.POST("/tasks", taskHandler.CreateTask, gate.Require(presets.OpTaskCreate))
	api.GET("/tasks/:id", taskHandler.GetTask, gate.Require(presets.OpTaskGet))
	api.PUT("/tasks/:id", taskHandler.UpdateTask, gate.Require(presets.OpTaskUpdate))
	api.DELETE("/tasks/:id", taskHandler.DeleteTask, gate.Require(presets.OpTaskDelete))

	api.GET("/users", userHandler.ListUsers, gate.Require(presets.OpUserList))
	api.POST("/users", userHandler.CreateUser, gate.Require(presets.OpUserCreate))
	api.GET("/users/:id", userHandler.GetUser, gate.Require(presets.OpUserGet))
	api.PUT("/users/:id", userHandler.UpdateUser, gate.Require(presets.OpUserUpdate))
	api.DELETE("/users/:id", userHandler.DeleteUser, gate.Require(presets.OpUserDelete))

	return &Server{
		echo:     e,
		deps:     deps,
		limiters: []*middleware.RateLimiter{globalRateLimiter, loginRateLimiter},
	}
}

// PruneRateLimiters drops per-caller limiters idle for at least idle.
func (s *Server) PruneRateLimiters(idle time.Duration) int {
	removed := 0
	for _, rl := range s.limiters {
		removed += rl.Prune(idle)
	}
	return removed
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() stdhttp.Handler {
	return s.echo
}

// Start blocks serving on address until Shutdown is called.
func (s *Server) Start(address string) error {
	if err := s.echo.Start(address); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func healthCheck(store Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		if store != nil {
			ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
			defer cancel()
			if err := store.Ping(ctx); err != nil {
				return c.JSON(stdhttp.StatusServiceUnavailable, map[string]string{
					jsonKeyStatus: statusDegraded,
				})
			}
		}
		return c.JSON(stdhttp.StatusOK, map[string]string{
			jsonKeyStatus: statusOK,
		})
	}
}
