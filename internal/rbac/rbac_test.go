package rbac_test

import (
	"errors"
	"task-service/internal/rbac"
	"task-service/internal/rbac/presets"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskManagementPresetIsValid(t *testing.T) {
	cfg := presets.TaskManagement()
	require.NoError(t, cfg.Validate())

	c := rbac.MustNew(cfg)
	assert.Len(t, c.Operations(), len(cfg.Requirements))
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  rbac.Config
	}{
		{"empty", rbac.Config{}},
		{"empty operation", rbac.Config{Requirements: []rbac.Requirement{{Operation: ""}}}},
		{"duplicate operation", rbac.Config{Requirements: []rbac.Requirement{{Operation: "a"}, {Operation: "a"}}}},
		{"unknown role", rbac.Config{Requirements: []rbac.Requirement{{Operation: "a", Roles: rbac.RoleSet{"Owner"}}}}},
		{"duplicate role", rbac.Config{Requirements: []rbac.Requirement{{Operation: "a", Roles: rbac.RoleSet{rbac.RoleUser, rbac.RoleUser}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate())
			assert.Panics(t, func() { rbac.MustNew(tt.cfg) })
		})
	}
}

func TestChecker_Allows(t *testing.T) {
	c := rbac.MustNew(presets.TaskManagement())

	tests := []struct {
		name    string
		op      rbac.Operation
		roles   []rbac.Role
		allowed bool
	}{
		{"admin creates task", presets.OpTaskCreate, []rbac.Role{rbac.RoleAdmin}, true},
		{"user cannot create task", presets.OpTaskCreate, []rbac.Role{rbac.RoleUser}, false},
		{"user reads task", presets.OpTaskGet, []rbac.Role{rbac.RoleUser}, true},
		{"no roles on gated op", presets.OpTaskList, nil, false},
		{"unknown role on gated op", presets.OpTaskDelete, []rbac.Role{"Owner"}, false},
		{"any of several roles", presets.OpTaskDelete, []rbac.Role{rbac.RoleUser, rbac.RoleAdmin}, true},
		{"public op without roles", presets.OpUserList, nil, true},
		{"update is ungated", presets.OpTaskUpdate, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Allows(tt.op, tt.roles...)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, rbac.ErrDenied)
			}
		})
	}
}

func TestChecker_UnknownOperation(t *testing.T) {
	c := rbac.MustNew(presets.TaskManagement())

	err := c.Allows("tasks.archive", rbac.RoleAdmin)
	assert.True(t, errors.Is(err, rbac.ErrUnknownOperation))
	assert.False(t, c.IsPublic("tasks.archive"))
	assert.True(t, c.IsPublic(presets.OpLogin))
}

func TestParseRole(t *testing.T) {
	r, err := rbac.ParseRole("Admin")
	require.NoError(t, err)
	assert.Equal(t, rbac.RoleAdmin, r)

	_, err = rbac.ParseRole("admin")
	assert.ErrorIs(t, err, rbac.ErrInvalidRole)

	assert.Equal(t, "Admin, User", rbac.RoleSet(rbac.Roles).String())
}
