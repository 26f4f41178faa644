package repository

import "context"

// Store bundles the repositories of one backend so the application can pick
// a driver at startup without knowing its concrete type.
type Store interface {
	Users() UserRepository
	Tasks() TaskRepository
	Ping(ctx context.Context) error
	Close()
}
