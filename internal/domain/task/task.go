package task

// DefaultStatus is applied when a task is created without one.
const DefaultStatus = "Pending"

// Task is a unit of work owned by one identity. OwnerID is a back-reference
// only; it is not checked against the user table.
type Task struct {
	ID          int     `json:"id"`
	Name        *string `json:"taskName"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	OwnerID     string  `json:"userId"`
}

// NameValue returns the name or "" when unset.
func (t *Task) NameValue() string {
	if t.Name == nil {
		return ""
	}
	return *t.Name
}

// Clone returns a deep copy.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	if t.Name != nil {
		name := *t.Name
		c.Name = &name
	}
	if t.Description != nil {
		desc := *t.Description
		c.Description = &desc
	}
	return &c
}

// UpdateTaskInput carries the fields a caller asked to change.
type UpdateTaskInput struct {
	Name        *string
	Description *string
	Status      string
}
