package rbac

import (
	"fmt"
	"sort"
)

// Checker answers "may a caller holding these roles invoke this operation?".
// It only performs set membership; field and ownership rules live elsewhere.
type Checker struct {
	required map[Operation]RoleSet
}

// New creates a Checker from a validated Config
func New(cfg Config) (*Checker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Checker{required: make(map[Operation]RoleSet, len(cfg.Requirements))}
	for _, req := range cfg.Requirements {
		roles := make(RoleSet, len(req.Roles))
		copy(roles, req.Roles)
		c.required[req.Operation] = roles
	}
	return c, nil
}

// MustNew creates a Checker and panics on invalid config
func MustNew(cfg Config) *Checker {
	c, err := New(cfg)
	if err != nil {
		panic(fmt.Sprintf(errMustNewPanicFmt, err))
	}
	return c
}

// Required returns the role set declared for op.
func (c *Checker) Required(op Operation) (RoleSet, error) {
	roles, ok := c.required[op]
	if !ok {
		return nil, fmt.Errorf(errUnknownOperationFmt, ErrUnknownOperation, op)
	}
	return roles, nil
}

// IsPublic reports whether op admits any caller.
func (c *Checker) IsPublic(op Operation) bool {
	roles, ok := c.required[op]
	return ok && len(roles) == 0
}

// Allows returns nil when callerRoles intersects the roles required by op.
func (c *Checker) Allows(op Operation, callerRoles ...Role) error {
	required, err := c.Required(op)
	if err != nil {
		return err
	}
	if len(required) == 0 {
		return nil
	}

	for _, role := range callerRoles {
		if required.Contains(role) {
			return nil
		}
	}

	return fmt.Errorf("%w: "+errDeniedNoIntersectionFmt, ErrDenied, required, RoleSet(callerRoles))
}

// Operations lists every operation in the table, sorted.
func (c *Checker) Operations() []Operation {
	ops := make([]Operation, 0, len(c.required))
	for op := range c.required {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool { return ops[i] < ops[j] })
	return ops
}
