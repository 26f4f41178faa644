package rbac

import "strings"

// Role is the caller's role as carried in the token's role claim.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// Roles lists every role the service recognises.
var Roles = []Role{RoleAdmin, RoleUser}

// Operation identifies an endpoint in the requirements table.
type Operation string

// RoleSet is the set of roles permitted to invoke an operation.
// An empty set admits any caller, authenticated or not.
type RoleSet []Role

// Contains reports whether role is a member of the set.
func (s RoleSet) Contains(role Role) bool {
	for _, r := range s {
		if r == role {
			return true
		}
	}
	return false
}

func (s RoleSet) String() string {
	names := make([]string, len(s))
	for i, r := range s {
		names[i] = string(r)
	}
	return strings.Join(names, ", ")
}

// IsValid reports whether r is one of the recognised roles.
func (r Role) IsValid() bool {
	return RoleSet(Roles).Contains(r)
}

// ParseRole converts a claim or request value to a Role. Matching is exact.
func ParseRole(value string) (Role, error) {
	r := Role(value)
	if !r.IsValid() {
		return "", invalidRole(value)
	}
	return r, nil
}
