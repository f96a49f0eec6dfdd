package domain

import "context"

// CollectionRepository is the persistence port. A user's collection is the
// sole unit of persistence; single tasks are never written in isolation.
// Load returns ErrCollectionNotFound when nothing is persisted for the user
// and a *DeserializationError when the stored payload is malformed.
type CollectionRepository interface {
	LoadCollection(ctx context.Context, userID string) ([]Task, error)
	SaveCollection(ctx context.Context, userID string, tasks []Task) error
	DeleteCollection(ctx context.Context, userID string) error
}

// SessionRepository persists the logged-in user between runs. CurrentUser
// returns ErrSessionNotFound when nobody is logged in.
type SessionRepository interface {
	CurrentUser(ctx context.Context) (User, error)
	SaveUser(ctx context.Context, user User) error
	ClearUser(ctx context.Context) error
}

// IdentityProvider is the boundary to the external login step.
type IdentityProvider interface {
	Provider() AuthProvider
	Authenticate(ctx context.Context) (User, error)
}
