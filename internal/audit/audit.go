// Package audit records who changed or was refused what. Events are written
// as structured log entries on a dedicated "audit" logger.
package audit

import (
	"context"
	"task-service/pkg/logger"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ResourceType represents the type of resource being acted upon
type ResourceType string

const (
	ResourceTypeTask    ResourceType = "task"
	ResourceTypeUser    ResourceType = "user"
	ResourceTypeSession ResourceType = "session"
)

// Action represents the action being performed
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionLogin  Action = "login"
)

// Status represents the outcome of an action
type Status string

const (
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
	StatusDenied  Status = "denied"
)

// Event represents an audit event
type Event struct {
	ActorID      string
	ActorRole    string
	ResourceType ResourceType
	ResourceID   string
	Action       Action
	Status       Status
	Reason       string
	Metadata     map[string]any
}

// Logger handles audit logging
type Logger struct {
	log *zap.Logger
}

// NewLogger creates a new audit logger. A nil log discards events.
func NewLogger(log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logger{log: log.Named("audit")}
}

// Log records event. Denials are written at warn level, everything else at info.
func (l *Logger) Log(ctx context.Context, event Event) {
	if l == nil {
		return
	}

	level := zapcore.InfoLevel
	if event.Status == StatusDenied {
		level = zapcore.WarnLevel
	}

	ce := l.log.Check(level, string(event.Action)+"_"+string(event.ResourceType))
	if ce == nil {
		return
	}

	fields := []zap.Field{
		zap.String("actor_id", event.ActorID),
		zap.String("actor_role", event.ActorRole),
		zap.String("resource_type", string(event.ResourceType)),
		zap.String("resource_id", event.ResourceID),
		zap.String("action", string(event.Action)),
		zap.String("status", string(event.Status)),
	}
	if id := logger.RequestID(ctx); id != "" {
		fields = append(fields, zap.String("request_id", id))
	}
	if event.Reason != "" {
		fields = append(fields, zap.String("reason", logger.SanitizeLogMessage(event.Reason)))
	}
	fields = append(fields, logger.Fields(event.Metadata)...)

	ce.Write(fields...)
}
