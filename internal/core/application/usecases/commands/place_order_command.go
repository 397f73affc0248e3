package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand checks out the caller's cart.
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	actor identity.Actor

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(actor identity.Actor) (PlaceOrderCommand, error) {
	if err := actor.Validate(); err != nil {
		return PlaceOrderCommand{}, err
	}
	return PlaceOrderCommand{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Actor() identity.Actor {
	return c.actor
}
