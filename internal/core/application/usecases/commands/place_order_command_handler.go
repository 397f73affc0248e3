package commands

import (
	"context"
	"log/slog"
	"time"

	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/core/ports"
)

// PlaceOrderCommandHandler converts the caller's cart into an order.
//
// The cart rows are read with a row lock, the order and its items are inserted
// and the cart is emptied in a single transaction. Any failure leaves the cart
// as it was. The notifier is called after commit and its failures are only
// logged.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, notifier, logger)
//	cmd, _ := NewPlaceOrderCommand(actor)
//
//	placed, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	// placed.Total() is the sum of the former cart prices
type PlaceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	notifier   ports.OrderNotifier
	policy     services.AccessPolicy
	logger     *slog.Logger
	now        func() time.Time
}

func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	notifier ports.OrderNotifier,
	logger *slog.Logger,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		policy:     services.NewAccessPolicy(),
		logger:     logger.With("component", "place-order"),
		now:        time.Now,
	}
}

func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.PlaceOrder); err != nil {
		return nil, err
	}

	placed, err := h.place(ctx, cmd.Actor().UserID())
	if err != nil {
		return nil, err
	}

	if h.notifier != nil {
		if err = h.notifier.OrderPlaced(ctx, placed); err != nil {
			h.logger.WarnContext(ctx, "order notification failed",
				"order_id", placed.ID(), "error", err)
		}
	}

	return placed, nil
}

func (h *PlaceOrderCommandHandler) place(ctx context.Context, userID int64) (*order.Order, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	items, err := cartRepo.ListByUserForUpdate(ctx, userID)
	if err != nil {
		return nil, err
	}

	placed, err := order.PlaceOrder(userID, items, h.now())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return nil, err
	}

	if _, err = cartRepo.ClearForUser(ctx, userID); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return placed, nil
}
