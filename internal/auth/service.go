package auth

import (
	"context"
	"errors"
	"task-service/internal/audit"
	"task-service/internal/domain/user"
	apperrors "task-service/pkg/errors"
	"task-service/pkg/logger"
	"time"

	"go.uber.org/zap"
)

// CredentialStore looks up identities for login.
type CredentialStore interface {
	GetByCredentials(ctx context.Context, username, password string) (*user.User, error)
}

// LoginRecorder counts login outcomes.
type LoginRecorder interface {
	ObserveLogin(result string)
}

type Service struct {
	users    CredentialStore
	tokens   *TokenService
	audit    *audit.Logger
	logger   *zap.Logger
	recorder LoginRecorder
}

func NewService(users CredentialStore, tokens *TokenService, auditLog *audit.Logger, log *zap.Logger, recorder LoginRecorder) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		users:    users,
		tokens:   tokens,
		audit:    auditLog,
		logger:   log.Named("auth"),
		recorder: recorder,
	}
}

// Login issues a token when username and password match a stored identity
// exactly. A mismatch yields apperrors.ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	if username == "" || password == "" {
		s.observe(loginFailure)
		s.auditLogin(ctx, username, nil, audit.StatusDenied)
		return "", time.Time{}, apperrors.InvalidCredentials()
	}

	u, err := s.users.GetByCredentials(ctx, username, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrInvalidCredentials) {
			s.observe(loginFailure)
			s.auditLogin(ctx, username, nil, audit.StatusDenied)
			s.logger.Info("login rejected", zap.String("username", username))
			return "", time.Time{}, apperrors.InvalidCredentials()
		}
		s.observe(loginError)
		s.logger.Error("credential lookup failed", logger.Error(err))
		return "", time.Time{}, apperrors.InternalServer(msgCredentialLookupFailed, err)
	}

	token, expiresAt, err := s.tokens.Generate(u)
	if err != nil {
		s.observe(loginError)
		return "", time.Time{}, apperrors.InternalServer(msgCredentialLookupFailed, err)
	}

	s.observe(loginSuccess)
	s.auditLogin(ctx, username, u, audit.StatusSuccess)
	s.logger.Info("login succeeded",
		zap.String("user_id", u.ID.String()),
		zap.String("role", string(u.Role)),
	)

	return token, expiresAt, nil
}

func (s *Service) observe(result string) {
	if s.recorder != nil {
		s.recorder.ObserveLogin(result)
	}
}

func (s *Service) auditLogin(ctx context.Context, username string, u *user.User, status audit.Status) {
	event := audit.Event{
		ResourceType: audit.ResourceTypeSession,
		Action:       audit.ActionLogin,
		Status:       status,
		Metadata:     map[string]any{"username": username},
	}
	if u != nil {
		event.ActorID = u.ID.String()
		event.ActorRole = string(u.Role)
		event.ResourceID = event.ActorID
	}
	s.audit.Log(ctx, event)
}
