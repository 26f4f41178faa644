package rbac

import (
	"errors"
	"fmt"
)

var (
	ErrDenied           = errors.New("authorization denied")
	ErrInvalidRole      = errors.New("invalid role")
	ErrUnknownOperation = errors.New("unknown operation")
)

const (
	errConfigOperationsEmpty       = "rbac config: operations must not be empty"
	errConfigOperationEmpty        = "rbac config: operation id must not be empty"
	errConfigDuplicateOperationFmt = "rbac config: duplicate operation: %s"
	errConfigUnknownRoleFmt        = "rbac config: operation %s references unknown role: %s"
	errConfigDuplicateRoleFmt      = "rbac config: operation %s lists role %s twice"
	errMustNewPanicFmt             = "rbac.MustNew: %v"
	errDeniedNoIntersectionFmt     = "requires one of [%s], caller has [%s]"
	errUnknownOperationFmt         = "%w: %s"
	errInvalidRoleFmt              = "%w: %q"
)

func invalidRole(value string) error {
	return fmt.Errorf(errInvalidRoleFmt, ErrInvalidRole, value)
}
