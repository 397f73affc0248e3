package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/identity"
)

// UserRepository defines the persistence contract for accounts and their group
// membership.
type UserRepository interface {
	// Add persists a new account and assigns its identity.
	Add(ctx context.Context, user *identity.User) error

	// Get loads an account with its groups.
	Get(ctx context.Context, id int64) (*identity.User, error)

	// GetByUsername loads an account with its groups by its unique username.
	GetByUsername(ctx context.Context, username string) (*identity.User, error)

	// AddToGroup makes the user a member of the group. Adding an existing member is a no-op.
	AddToGroup(ctx context.Context, userID int64, group identity.Group) error

	// RemoveFromGroup drops the membership. Removing a non-member is a no-op.
	RemoveFromGroup(ctx context.Context, userID int64, group identity.Group) error
}
