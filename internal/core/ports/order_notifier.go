package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/order"
)

// OrderNotifier tells the kitchen about newly placed orders.
type OrderNotifier interface {
	OrderPlaced(ctx context.Context, placed *order.Order) error
}
