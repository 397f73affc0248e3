package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its items and assigns their identities.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable part of an order: status and delivery crew.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// Delete removes an order and its items.
	Delete(ctx context.Context, id int64) error
}
