package ports

import (
	"context"
	"time"

	"littlelemon/internal/core/domain/model/cart"
)

// CartRepository defines the persistence contract for cart items.
type CartRepository interface {
	// Add appends a new line to the user's cart.
	Add(ctx context.Context, item *cart.Item) error

	// ListByUserForUpdate returns the user's cart in insertion order. Within a
	// transaction the rows stay locked until it ends, so two checkouts of the
	// same cart are serialized.
	ListByUserForUpdate(ctx context.Context, userID int64) ([]*cart.Item, error)

	// ClearForUser deletes every line of the user's cart and reports how many went.
	ClearForUser(ctx context.Context, userID int64) (int64, error)

	// DeleteOlderThan deletes every cart line created before cutoff.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
