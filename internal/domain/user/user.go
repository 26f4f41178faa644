package user

import (
	"task-service/internal/rbac"

	"github.com/google/uuid"
)

// User is an identity that can log in and own tasks.
// Password is an opaque secret compared by equality and never serialized.
type User struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"userName"`
	Password string    `json:"-"`
	Email    string    `json:"userEmail"`
	Phone    *string   `json:"phone,omitempty"`
	Role     rbac.Role `json:"role"`
}

// Clone returns a deep copy so stores never hand out shared pointers.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	if u.Phone != nil {
		phone := *u.Phone
		c.Phone = &phone
	}
	return &c
}

type CreateUserInput struct {
	UserName string
	Password string
	Email    string
	Phone    *string
	Role     rbac.Role
}

// UpdateUserInput carries requested changes; nil or blank means "leave as is".
type UpdateUserInput struct {
	UserName *string
	Role     *string
	Password *string
	Email    *string
	Phone    *string
}
