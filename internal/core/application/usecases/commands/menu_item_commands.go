package commands

import (
	"errors"
	"fmt"

	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateMenuItemCommandIsNotConstructed = errors.New(
		"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
	)
	ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
		"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
	)
	ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
		"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
	)
)

// MenuItemFields is the raw client input for a menu item write. Price is kept as
// text so that both 5.5 and "5.50" are accepted.
type MenuItemFields struct {
	Title      *string
	Price      *string
	Featured   *bool
	CategoryID *int64
}

// changes validates the fields. With requireAll, title, price and category_id
// must all be present.
func (f MenuItemFields) changes(requireAll bool) (catalog.MenuItemChanges, error) {
	var problems []error
	if requireAll {
		if f.Title == nil {
			problems = append(problems, errs.NewValueIsRequiredError("title"))
		}
		if f.Price == nil {
			problems = append(problems, errs.NewValueIsRequiredError("price"))
		}
		if f.CategoryID == nil {
			problems = append(problems, errs.NewValueIsRequiredError("category_id"))
		}
	}

	changes := catalog.MenuItemChanges{
		Title:      f.Title,
		Featured:   f.Featured,
		CategoryID: f.CategoryID,
	}
	if f.Price != nil {
		amount, err := decimal.NewFromString(*f.Price)
		if err != nil {
			problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
				"price", fmt.Errorf("%q is not a decimal number", *f.Price)))
		} else if price, err := kernel.NewPrice(amount); err != nil {
			problems = append(problems, err)
		} else {
			changes.Price = &price
		}
	}

	return changes, errors.Join(problems...)
}

// CreateMenuItemCommand adds a menu item. Title, price and category_id are required.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	actor  identity.Actor
	fields MenuItemFields

	guard guard.ConstructorGuard
}

func NewCreateMenuItemCommand(actor identity.Actor, fields MenuItemFields) (CreateMenuItemCommand, error) {
	if err := actor.Validate(); err != nil {
		return CreateMenuItemCommand{}, err
	}
	return CreateMenuItemCommand{actor: actor, fields: fields, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) Actor() identity.Actor  { return c.actor }
func (c CreateMenuItemCommand) Fields() MenuItemFields { return c.fields }

// UpdateMenuItemCommand is a full (PUT) or partial (PATCH) menu item update.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	actor      identity.Actor
	menuItemID int64
	fields     MenuItemFields
	partial    bool

	guard guard.ConstructorGuard
}

func NewUpdateMenuItemCommand(
	actor identity.Actor,
	menuItemID int64,
	fields MenuItemFields,
	partial bool,
) (UpdateMenuItemCommand, error) {
	if err := errors.Join(actor.Validate(), validateID("menu item id", menuItemID)); err != nil {
		return UpdateMenuItemCommand{}, err
	}
	return UpdateMenuItemCommand{
		actor:      actor,
		menuItemID: menuItemID,
		fields:     fields,
		partial:    partial,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) Actor() identity.Actor  { return c.actor }
func (c UpdateMenuItemCommand) MenuItemID() int64      { return c.menuItemID }
func (c UpdateMenuItemCommand) Fields() MenuItemFields { return c.fields }
func (c UpdateMenuItemCommand) Partial() bool          { return c.partial }

// DeleteMenuItemCommand removes a menu item.
type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	actor      identity.Actor
	menuItemID int64

	guard guard.ConstructorGuard
}

func NewDeleteMenuItemCommand(actor identity.Actor, menuItemID int64) (DeleteMenuItemCommand, error) {
	if err := errors.Join(actor.Validate(), validateID("menu item id", menuItemID)); err != nil {
		return DeleteMenuItemCommand{}, err
	}
	return DeleteMenuItemCommand{actor: actor, menuItemID: menuItemID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

func (c DeleteMenuItemCommand) Actor() identity.Actor { return c.actor }
func (c DeleteMenuItemCommand) MenuItemID() int64     { return c.menuItemID }
