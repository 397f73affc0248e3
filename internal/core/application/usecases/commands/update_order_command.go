package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrStatusIsRequired = errors.New("Status value is required.")
)

// OrderFields carries the writable fields of an order as they came in. Nil means absent.
type OrderFields struct {
	DeliveryCrewID *int64
	Status         *int
}

// UpdateOrderCommand changes the status or delivery crew of an order. Partial
// selects the PATCH rules, in which a delivery crew member may set the status
// of their own orders.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	actor   identity.Actor
	orderID int64
	fields  OrderFields
	partial bool

	guard guard.ConstructorGuard
}

func NewUpdateOrderCommand(actor identity.Actor, orderID int64, fields OrderFields, partial bool) (UpdateOrderCommand, error) {
	if err := errors.Join(actor.Validate(), validateID("order id", orderID)); err != nil {
		return UpdateOrderCommand{}, err
	}
	return UpdateOrderCommand{
		actor:   actor,
		orderID: orderID,
		fields:  fields,
		partial: partial,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) Actor() identity.Actor { return c.actor }
func (c UpdateOrderCommand) OrderID() int64        { return c.orderID }
func (c UpdateOrderCommand) Fields() OrderFields   { return c.fields }
func (c UpdateOrderCommand) Partial() bool         { return c.partial }

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand removes an order with its items.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	actor   identity.Actor
	orderID int64

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(actor identity.Actor, orderID int64) (DeleteOrderCommand, error) {
	if err := errors.Join(actor.Validate(), validateID("order id", orderID)); err != nil {
		return DeleteOrderCommand{}, err
	}
	return DeleteOrderCommand{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) Actor() identity.Actor { return c.actor }
func (c DeleteOrderCommand) OrderID() int64        { return c.orderID }
