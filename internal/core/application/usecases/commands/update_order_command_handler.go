package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"
)

// UpdateOrderCommandHandler applies manager and delivery crew updates to an order.
//
// Rules:
//   - Manager may set status and delivery_crew_id; the crew member must exist
//   - Delivery crew may only PATCH the status of orders assigned to them;
//     delivery_crew_id is ignored and status is required
//   - Customers are forbidden
//
// Every field is checked before the order changes.
type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{uowFactory: uowFactory, policy: services.NewAccessPolicy()}
}

func (h *UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	op := services.ReplaceOrder
	if cmd.Partial() {
		op = services.PatchOrder
	}
	if err := h.policy.Authorize(cmd.Actor(), op); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = h.policy.AuthorizeOrder(cmd.Actor(), op, o); err != nil {
		return err
	}

	changes, err := h.changes(ctx, uow, cmd.Actor(), cmd.Fields())
	if err != nil {
		return err
	}
	if err = o.Apply(changes); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h *UpdateOrderCommandHandler) changes(
	ctx context.Context,
	uow OrderUoW,
	actor identity.Actor,
	fields OrderFields,
) (order.Changes, error) {
	var changes order.Changes

	if actor.IsDeliveryCrew() && fields.Status == nil {
		return changes, errs.NewValueIsRequiredErrorWithCause("status", ErrStatusIsRequired)
	}
	if fields.Status != nil {
		status, err := order.ParseStatus(*fields.Status)
		if err != nil {
			return changes, err
		}
		changes.Status = &status
	}

	if actor.IsManager() && fields.DeliveryCrewID != nil {
		crew, err := uow.UserRepository().Get(ctx, *fields.DeliveryCrewID)
		if err != nil {
			return changes, err
		}
		id := crew.ID()
		changes.DeliveryCrewID = &id
	}

	return changes, nil
}

// DeleteOrderCommandHandler removes an order. Manager only.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.AccessPolicy
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory, policy: services.NewAccessPolicy()}
}

func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.DeleteOrder); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
