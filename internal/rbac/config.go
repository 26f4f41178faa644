package rbac

import "fmt"

// Requirement declares the roles permitted to invoke one operation.
type Requirement struct {
	Operation Operation
	Roles     RoleSet
}

// Config is the static operation-to-roles table consulted by the access gate.
type Config struct {
	Requirements []Requirement
}

// Validate checks internal consistency of the Config
func (c *Config) Validate() error {
	if len(c.Requirements) == 0 {
		return fmt.Errorf(errConfigOperationsEmpty)
	}

	seen := make(map[Operation]bool, len(c.Requirements))
	for _, req := range c.Requirements {
		if req.Operation == "" {
			return fmt.Errorf(errConfigOperationEmpty)
		}
		if seen[req.Operation] {
			return fmt.Errorf(errConfigDuplicateOperationFmt, req.Operation)
		}
		seen[req.Operation] = true

		roles := make(map[Role]bool, len(req.Roles))
		for _, role := range req.Roles {
			if !role.IsValid() {
				return fmt.Errorf(errConfigUnknownRoleFmt, req.Operation, role)
			}
			if roles[role] {
				return fmt.Errorf(errConfigDuplicateRoleFmt, req.Operation, role)
			}
			roles[role] = true
		}
	}

	return nil
}
