package commands

import (
	"context"
	"time"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"
)

// AddCartItemCommandHandler appends a priced line to the caller's cart and
// returns its id. Lines for the same menu item are never merged.
type AddCartItemCommandHandler struct {
	uowFactory CartUoWFactory
	policy     services.AccessPolicy
}

func NewAddCartItemCommandHandler(uowFactory CartUoWFactory) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{uowFactory: uowFactory, policy: services.NewAccessPolicy()}
}

func (h *AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.ManageCart); err != nil {
		return 0, err
	}

	if cmd.MenuItemID() == nil {
		return 0, errs.NewValueIsRequiredError("menuitem_id")
	}
	if cmd.Quantity() == nil {
		return 0, errs.NewValueIsRequiredError("quantity")
	}
	quantity, err := kernel.NewQuantity(*cmd.Quantity())
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	menuItem, err := uow.MenuItemRepository().Get(ctx, *cmd.MenuItemID())
	if err != nil {
		return 0, err
	}

	item, err := cart.NewItem(cmd.Actor().UserID(), menuItem, quantity, time.Now())
	if err != nil {
		return 0, err
	}

	if err = uow.CartRepository().Add(ctx, item); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return item.ID(), nil
}

// ClearCartCommandHandler deletes every line of the caller's cart.
type ClearCartCommandHandler struct {
	uowFactory CartUoWFactory
	policy     services.AccessPolicy
}

func NewClearCartCommandHandler(uowFactory CartUoWFactory) ClearCartCommandHandler {
	return ClearCartCommandHandler{uowFactory: uowFactory, policy: services.NewAccessPolicy()}
}

func (h *ClearCartCommandHandler) Handle(ctx context.Context, cmd ClearCartCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.ManageCart); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CartRepository().ClearForUser(ctx, cmd.Actor().UserID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// PurgeStaleCartItemsCommandHandler removes abandoned cart lines and reports how many.
type PurgeStaleCartItemsCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewPurgeStaleCartItemsCommandHandler(uowFactory CartUoWFactory) PurgeStaleCartItemsCommandHandler {
	return PurgeStaleCartItemsCommandHandler{uowFactory: uowFactory}
}

func (h *PurgeStaleCartItemsCommandHandler) Handle(ctx context.Context, cmd PurgeStaleCartItemsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := uow.CartRepository().DeleteOlderThan(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
