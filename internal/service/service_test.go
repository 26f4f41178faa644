package service

import (
	"context"
	"math"
	"strings"
	"task-service/internal/domain/task"
	"task-service/internal/domain/user"
	"task-service/internal/policy"
	"task-service/internal/rbac"
	"task-service/internal/repository"
	"task-service/internal/repository/memory"
	apperrors "task-service/pkg/errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin    = policy.Actor{ID: repository.SeedAdminID.String(), Role: rbac.RoleAdmin}
	ownerOf2 = policy.Actor{ID: "user1", Role: rbac.RoleUser}
	stranger = policy.Actor{ID: "user2", Role: rbac.RoleUser}
)

type policyCounts map[string]map[string]int

func (p policyCounts) ObservePolicyDecision(resource, outcome string) {
	if p[resource] == nil {
		p[resource] = map[string]int{}
	}
	p[resource][outcome]++
}

func ptr(s string) *string { return &s }

// newTaskFixture returns a service over a store holding task 2 owned by "user1".
func newTaskFixture(t *testing.T) (*TaskService, *memory.Store, policyCounts) {
	t.Helper()
	store := memory.New()
	_, err := store.Tasks().Create(context.Background(), &task.Task{
		ID:          2,
		Name:        ptr("Development"),
		Description: ptr("Development of Web Application"),
		Status:      "Active",
		OwnerID:     "user1",
	})
	require.NoError(t, err)

	counts := policyCounts{}
	return NewTaskService(store.Tasks(), nil, nil, counts), store, counts
}

func TestTaskService_OwnerUpdatesStatus(t *testing.T) {
	ctx := context.Background()
	svc, store, counts := newTaskFixture(t)

	updated, err := svc.Update(ctx, ownerOf2, 2, task.UpdateTaskInput{Status: "Done"})
	require.NoError(t, err)
	assert.Equal(t, "Done", updated.Status)
	assert.Equal(t, "Development", updated.NameValue())

	stored, err := store.Tasks().GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Done", stored.Status)
	assert.Equal(t, 1, counts[resourceTask][outcomeAllowed])
}

func TestTaskService_OwnerCannotRename(t *testing.T) {
	ctx := context.Background()
	svc, store, counts := newTaskFixture(t)

	_, err := svc.Update(ctx, ownerOf2, 2, task.UpdateTaskInput{Name: ptr("X"), Status: "Done"})
	assert.ErrorIs(t, err, apperrors.ErrForbiddenField)
	assert.Contains(t, apperrors.Message(err, ""), "not allowed to update task name or description")

	stored, err := store.Tasks().GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Active", stored.Status, "status unchanged")
	assert.Equal(t, 1, counts[resourceTask][string(apperrors.KindForbiddenField)])
}

func TestTaskService_NonOwnerAlwaysOwnershipViolation(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTaskFixture(t)

	for _, changes := range []task.UpdateTaskInput{
		{Status: "Done"},
		{Name: ptr("X"), Status: "Done"},
		{Description: ptr("Y"), Status: "Done"},
		{Status: "Done\n"},
		{Status: strings.Repeat("s", 60)},
		{Name: ptr(strings.Repeat("n", 300)), Status: "Done"},
	} {
		_, err := svc.Update(ctx, stranger, 2, changes)
		assert.ErrorIs(t, err, apperrors.ErrOwnershipViolation, changes.Status)
	}
}

func TestTaskService_AdminAppliesExactly(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTaskFixture(t)

	updated, err := svc.Update(ctx, admin, 2, task.UpdateTaskInput{Name: ptr("Ops"), Status: "Blocked"})
	require.NoError(t, err)
	assert.Equal(t, "Ops", updated.NameValue())
	assert.Nil(t, updated.Description, "omitted description is cleared")
	assert.Equal(t, "Blocked", updated.Status)

	long := strings.Repeat("s", 60)
	updated, err = svc.Update(ctx, admin, 2, task.UpdateTaskInput{Name: ptr("Ops"), Status: long})
	require.NoError(t, err)
	assert.Equal(t, long, updated.Status)
}

func TestTaskService_UpdateErrorPrecedence(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTaskFixture(t)

	_, err := svc.Update(ctx, stranger, 999, task.UpdateTaskInput{Status: " "})
	assert.ErrorIs(t, err, apperrors.ErrMalformed)

	_, err = svc.Update(ctx, policy.Actor{ID: "x", Role: "Guest"}, 2, task.UpdateTaskInput{Status: "Done"})
	assert.ErrorIs(t, err, apperrors.ErrAccessDenied)

	_, err = svc.Update(ctx, ownerOf2, 999, task.UpdateTaskInput{Status: "Done"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTaskService_GetHidesForeignTasks(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTaskFixture(t)

	got, err := svc.Get(ctx, ownerOf2, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ID)

	_, err = svc.Get(ctx, admin, 2)
	require.NoError(t, err)

	_, err = svc.Get(ctx, stranger, 2)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = svc.Get(ctx, admin, 42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTaskFixture(t)

	tests := []struct {
		name    string
		task    *task.Task
		message string
	}{
		{"missing name", &task.Task{Status: "Pending", OwnerID: "u"}, msgTaskNameRequired},
		{"blank name", &task.Task{Name: ptr("  "), Status: "Pending", OwnerID: "u"}, msgTaskNameRequired},
		{"blank status", &task.Task{Name: ptr("A"), Status: "", OwnerID: "u"}, msgTaskStatusRequired},
		{"missing owner", &task.Task{Name: ptr("A"), Status: "Pending"}, msgTaskOwnerRequired},
		{"taken id", &task.Task{ID: 2, Name: ptr("A"), Status: "Pending", OwnerID: "u"}, "Task with ID 2 already exists."},
		{"id above serial range", &task.Task{ID: math.MaxInt32 + 1, Name: ptr("A"), Status: "Pending", OwnerID: "u"}, "Id must not exceed 2147483647."},
		{"max int id", &task.Task{ID: math.MaxInt, Name: ptr("A"), Status: "Pending", OwnerID: "u"}, "Id must not exceed 2147483647."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, admin, tt.task)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.Equal(t, tt.message, apperrors.Message(err, ""))
		})
	}

	id, err := svc.Create(ctx, admin, &task.Task{Name: ptr("A"), Status: "Pending", OwnerID: "u"})
	require.NoError(t, err)
	assert.Equal(t, 3, id)

	id, err = svc.Create(ctx, admin, &task.Task{ID: math.MaxInt32, Name: ptr("B"), Status: "Pending", OwnerID: "u"})
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt32, id)
}

func TestTaskService_DeleteMissingMentionsID(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newTaskFixture(t)

	err := svc.Delete(ctx, admin, 999)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, apperrors.Message(err, ""), "999")

	require.NoError(t, svc.Delete(ctx, admin, 2))
	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func newUserFixture(t *testing.T) (*UserService, *memory.Store) {
	t.Helper()
	store := memory.New()
	require.NoError(t, repository.Seed(context.Background(), store, nil))
	return NewUserService(store.Users(), nil, nil, policyCounts{}), store
}

func TestUserService_UpdateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserFixture(t)

	changes := user.UpdateUserInput{Email: ptr("bobby@example.com"), Phone: ptr("+1 555 0100"), Password: ptr("new")}

	first, err := svc.Update(ctx, repository.SeedUserID.String(), repository.SeedUserID, changes)
	require.NoError(t, err)
	second, err := svc.Update(ctx, repository.SeedUserID.String(), repository.SeedUserID, changes)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "bobby@example.com", second.Email)
	assert.Equal(t, "new", second.Password)
}

func TestUserService_PhoneFormats(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserFixture(t)
	bob := repository.SeedUserID

	for _, phone := range []string{"(555) 123-4567", "+1 (555) 123.4567", "+974-10101022"} {
		updated, err := svc.Update(ctx, bob.String(), bob, user.UpdateUserInput{Phone: ptr(phone)})
		require.NoError(t, err, phone)
		assert.Equal(t, phone, *updated.Phone)
	}

	created, err := svc.Create(ctx, user.CreateUserInput{
		UserName: "Erin", Password: "pw", Email: "erin@example.com", Phone: ptr("(555) 987.6543"), Role: rbac.RoleUser,
	})
	require.NoError(t, err)
	assert.Equal(t, "(555) 987.6543", *created.Phone)

	_, err = svc.Update(ctx, bob.String(), bob, user.UpdateUserInput{Phone: ptr(strings.Repeat("5", 40))})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestUserService_UpdateRules(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserFixture(t)
	bob := repository.SeedUserID
	jhon := repository.SeedAdminID

	_, err := svc.Update(ctx, bob.String(), bob, user.UpdateUserInput{UserName: ptr("Robert")})
	assert.ErrorIs(t, err, apperrors.ErrForbiddenField)

	_, err = svc.Update(ctx, bob.String(), bob, user.UpdateUserInput{Role: ptr("Admin")})
	assert.ErrorIs(t, err, apperrors.ErrForbiddenField)

	updated, err := svc.Update(ctx, jhon.String(), bob, user.UpdateUserInput{UserName: ptr("Robert"), Role: ptr("Admin")})
	require.NoError(t, err)
	assert.Equal(t, "Robert", updated.UserName)
	assert.Equal(t, rbac.RoleAdmin, updated.Role)

	_, err = svc.Update(ctx, jhon.String(), bob, user.UpdateUserInput{Role: ptr("Root")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Update(ctx, jhon.String(), bob, user.UpdateUserInput{Email: ptr("not-an-email")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Equal(t, msgEmailInvalid, apperrors.Message(err, ""))

	_, err = svc.Update(ctx, jhon.String(), jhon, user.UpdateUserInput{UserName: ptr("Robert")})
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestUserService_UpdateResolution(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserFixture(t)

	_, err := svc.Update(ctx, "garbage", uuid.New(), user.UpdateUserInput{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound, "missing target wins over a bad actor")

	_, err = svc.Update(ctx, "", repository.SeedUserID, user.UpdateUserInput{})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)

	_, err = svc.Update(ctx, "garbage", repository.SeedUserID, user.UpdateUserInput{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidActor)

	_, err = svc.Update(ctx, uuid.NewString(), repository.SeedUserID, user.UpdateUserInput{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidActor)
}

func TestUserService_CreateAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newUserFixture(t)

	u, err := svc.Create(ctx, user.CreateUserInput{UserName: "Carol", Password: "pw", Email: "carol@example.com", Role: rbac.RoleUser})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, u.ID)

	_, err = svc.Create(ctx, user.CreateUserInput{UserName: "Dave", Password: "pw", Email: "dave@example.com", Role: "Owner"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Create(ctx, user.CreateUserInput{UserName: "", Password: "pw", Email: "e@example.com", Role: rbac.RoleUser})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Create(ctx, user.CreateUserInput{UserName: "Carol", Password: "pw", Email: "carol@example.com", Role: rbac.RoleUser})
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	require.NoError(t, svc.Delete(ctx, u.ID))
	err = svc.Delete(ctx, u.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Contains(t, apperrors.Message(err, ""), u.ID.String())
}
