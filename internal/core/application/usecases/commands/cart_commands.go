package commands

import (
	"errors"
	"time"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
	ErrClearCartCommandIsNotConstructed = errors.New(
		"ClearCartCommand must be created via NewClearCartCommand constructor",
	)
	ErrPurgeStaleCartItemsCommandIsNotConstructed = errors.New(
		"PurgeStaleCartItemsCommand must be created via NewPurgeStaleCartItemsCommand constructor",
	)
)

// AddCartItemCommand puts a menu item into the caller's cart. Both fields are
// required; they are checked by the handler after authorization.
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	actor      identity.Actor
	menuItemID *int64
	quantity   *int

	guard guard.ConstructorGuard
}

func NewAddCartItemCommand(actor identity.Actor, menuItemID *int64, quantity *int) (AddCartItemCommand, error) {
	if err := actor.Validate(); err != nil {
		return AddCartItemCommand{}, err
	}
	return AddCartItemCommand{
		actor:      actor,
		menuItemID: menuItemID,
		quantity:   quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

func (c AddCartItemCommand) Actor() identity.Actor { return c.actor }
func (c AddCartItemCommand) MenuItemID() *int64    { return c.menuItemID }
func (c AddCartItemCommand) Quantity() *int        { return c.quantity }

// ClearCartCommand empties the caller's cart.
type ClearCartCommand struct { //nolint:recvcheck //using for validation
	actor identity.Actor

	guard guard.ConstructorGuard
}

func NewClearCartCommand(actor identity.Actor) (ClearCartCommand, error) {
	if err := actor.Validate(); err != nil {
		return ClearCartCommand{}, err
	}
	return ClearCartCommand{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (c ClearCartCommand) Validate() error {
	return c.guard.Validate(ErrClearCartCommandIsNotConstructed)
}

func (c ClearCartCommand) Actor() identity.Actor {
	return c.actor
}

// PurgeStaleCartItemsCommand deletes cart lines of every customer that were
// added before Cutoff. It is issued by the scheduler, not by a user.
type PurgeStaleCartItemsCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewPurgeStaleCartItemsCommand builds the command for items older than ttl at now.
func NewPurgeStaleCartItemsCommand(now time.Time, ttl time.Duration) (PurgeStaleCartItemsCommand, error) {
	if ttl <= 0 {
		return PurgeStaleCartItemsCommand{}, errs.NewValueIsOutOfRangeError("cart ttl", ttl, "1ns", "none")
	}
	return PurgeStaleCartItemsCommand{cutoff: now.Add(-ttl), guard: guard.NewConstructorGuard()}, nil
}

func (c PurgeStaleCartItemsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeStaleCartItemsCommandIsNotConstructed)
}

func (c PurgeStaleCartItemsCommand) Cutoff() time.Time {
	return c.cutoff
}
