package service

import (
	"context"
	"errors"
	"fmt"
	"task-service/internal/audit"
	"task-service/internal/domain/user"
	"task-service/internal/policy"
	"task-service/internal/rbac"
	"task-service/internal/repository"
	apperrors "task-service/pkg/errors"
	"task-service/pkg/logger"
	"task-service/pkg/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService struct {
	users    repository.UserRepository
	audit    *audit.Logger
	logger   *zap.Logger
	recorder PolicyRecorder
}

func NewUserService(users repository.UserRepository, auditLog *audit.Logger, log *zap.Logger, recorder PolicyRecorder) *UserService {
	if log == nil {
		log = zap.NewNop()
	}
	return &UserService{
		users:    users,
		audit:    auditLog,
		logger:   log.Named("users"),
		recorder: recorder,
	}
}

func (s *UserService) List(ctx context.Context) ([]*user.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, wrapUnexpected(err)
	}
	return users, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, wrapUnexpected(err)
	}
	return u, nil
}

// Create registers a new identity with a freshly generated id.
func (s *UserService) Create(ctx context.Context, input user.CreateUserInput) (*user.User, error) {
	if err := validateNewUser(input); err != nil {
		return nil, err
	}

	u := &user.User{
		ID:       uuid.New(),
		UserName: input.UserName,
		Password: input.Password,
		Email:    input.Email,
		Phone:    input.Phone,
		Role:     input.Role,
	}

	if err := s.users.Create(ctx, u); err != nil {
		if !isExpected(err) {
			s.logger.Error("user create failed", logger.Error(err))
		}
		return nil, wrapUnexpected(err)
	}

	s.logger.Info("user created", zap.String("user_id", u.ID.String()), zap.String("role", string(u.Role)))
	s.audit.Log(ctx, audit.Event{
		ResourceType: audit.ResourceTypeUser,
		ResourceID:   u.ID.String(),
		Action:       audit.ActionCreate,
		Status:       audit.StatusSuccess,
	})

	return u, nil
}

// Update applies changes to the target on behalf of the caller identified by
// actorID. A missing target is reported before the caller is looked at; an
// empty actorID then yields apperrors.ErrUnauthorized.
func (s *UserService) Update(ctx context.Context, actorID string, targetID uuid.UUID, changes user.UpdateUserInput) (*user.User, error) {
	if err := validateUserChanges(changes); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, targetID); err != nil {
		return nil, wrapUnexpected(err)
	}

	if actorID == "" {
		return nil, apperrors.Unauthorized(msgUnauthorizedAccess)
	}

	actor, err := s.resolveActor(ctx, actorID)
	if err != nil {
		s.finishUpdate(ctx, nil, targetID, err)
		return nil, err
	}

	updated, err := s.users.Update(ctx, targetID, func(target *user.User) error {
		return policy.ApplyUserUpdate(actor, target, changes)
	})
	err = wrapUnexpected(err)
	s.finishUpdate(ctx, actor, targetID, err)
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// resolveActor loads the caller's own record. Any failure to find it is an
// invalid actor, never a not-found for the target.
func (s *UserService) resolveActor(ctx context.Context, actorID string) (*user.User, error) {
	id, err := uuid.Parse(actorID)
	if err != nil {
		return nil, apperrors.InvalidActor(msgCurrentUserMissing)
	}

	actor, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.InvalidActor(msgCurrentUserMissing)
		}
		return nil, wrapUnexpected(err)
	}
	return actor, nil
}

func (s *UserService) finishUpdate(ctx context.Context, actor *user.User, targetID uuid.UUID, err error) {
	if s.recorder != nil {
		s.recorder.ObservePolicyDecision(resourceUser, outcome(err))
	}

	event := audit.Event{
		ResourceType: audit.ResourceTypeUser,
		ResourceID:   targetID.String(),
		Action:       audit.ActionUpdate,
		Status:       audit.StatusSuccess,
	}
	if actor != nil {
		event.ActorID = actor.ID.String()
		event.ActorRole = string(actor.Role)
	}

	switch {
	case err == nil:
		s.logger.Info("user updated", zap.String("user_id", targetID.String()), zap.String("actor_id", event.ActorID))
	case isExpected(err):
		event.Status = audit.StatusDenied
		event.Reason = apperrors.Message(err, err.Error())
		s.logger.Warn("user update refused",
			zap.String("user_id", targetID.String()),
			zap.String("actor_id", event.ActorID),
			zap.String("kind", string(apperrors.KindOf(err))),
		)
	default:
		event.Status = audit.StatusFailure
		s.logger.Error("user update failed", zap.String("user_id", targetID.String()), logger.Error(err))
	}

	s.audit.Log(ctx, event)
}

// Delete removes the identity or reports "User with ID <id> not found.".
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NotFound(fmt.Sprintf(msgUserNotFoundFmt, id))
		}
		s.logger.Error("user delete failed", zap.String("user_id", id.String()), logger.Error(err))
		return wrapUnexpected(err)
	}

	s.logger.Info("user deleted", zap.String("user_id", id.String()))
	s.audit.Log(ctx, audit.Event{
		ResourceType: audit.ResourceTypeUser,
		ResourceID:   id.String(),
		Action:       audit.ActionDelete,
		Status:       audit.StatusSuccess,
	})
	return nil
}

func validateNewUser(input user.CreateUserInput) error {
	if err := validator.UserName(input.UserName); err != nil {
		return apperrors.Validation(err.Error())
	}
	if err := validator.Password(input.Password); err != nil {
		return apperrors.Validation(err.Error())
	}
	if err := validator.Email(input.Email); err != nil {
		return apperrors.Validation(err.Error())
	}
	if input.Phone != nil && !isBlank(*input.Phone) {
		if err := validator.Phone(*input.Phone); err != nil {
			return apperrors.Validation(err.Error())
		}
	}
	if _, err := rbac.ParseRole(string(input.Role)); err != nil {
		return apperrors.Validation(msgUserRoleInvalid)
	}
	return nil
}

// validateUserChanges checks the shape of supplied values only; blank values
// are skipped since they leave the field unchanged.
func validateUserChanges(changes user.UpdateUserInput) error {
	if changes.UserName != nil && !isBlank(*changes.UserName) {
		if err := validator.UserName(*changes.UserName); err != nil {
			return apperrors.Validation(err.Error())
		}
	}
	if changes.Password != nil && !isBlank(*changes.Password) {
		if err := validator.Password(*changes.Password); err != nil {
			return apperrors.Validation(err.Error())
		}
	}
	if changes.Email != nil && !isBlank(*changes.Email) {
		if err := validator.Email(*changes.Email); err != nil {
			return apperrors.Validation(msgEmailInvalid)
		}
	}
	if changes.Phone != nil && !isBlank(*changes.Phone) {
		if err := validator.Phone(*changes.Phone); err != nil {
			return apperrors.Validation(err.Error())
		}
	}
	return nil
}
