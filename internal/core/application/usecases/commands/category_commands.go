package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var (
	ErrCreateCategoryCommandIsNotConstructed = errors.New(
		"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
	)
	ErrUpdateCategoryCommandIsNotConstructed = errors.New(
		"UpdateCategoryCommand must be created via NewUpdateCategoryCommand constructor",
	)
	ErrDeleteCategoryCommandIsNotConstructed = errors.New(
		"DeleteCategoryCommand must be created via NewDeleteCategoryCommand constructor",
	)
)

// CreateCategoryCommand adds a category. An empty slug is derived from the title.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	actor identity.Actor
	title string
	slug  string

	guard guard.ConstructorGuard
}

func NewCreateCategoryCommand(actor identity.Actor, title, slug string) (CreateCategoryCommand, error) {
	if err := actor.Validate(); err != nil {
		return CreateCategoryCommand{}, err
	}
	return CreateCategoryCommand{actor: actor, title: title, slug: slug, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

func (c CreateCategoryCommand) Actor() identity.Actor { return c.actor }
func (c CreateCategoryCommand) Title() string         { return c.title }
func (c CreateCategoryCommand) Slug() string          { return c.slug }

// UpdateCategoryCommand changes the given fields of a category.
type UpdateCategoryCommand struct { //nolint:recvcheck //using for validation
	actor      identity.Actor
	categoryID int64
	title      *string
	slug       *string

	guard guard.ConstructorGuard
}

func NewUpdateCategoryCommand(
	actor identity.Actor,
	categoryID int64,
	title, slug *string,
) (UpdateCategoryCommand, error) {
	if err := errors.Join(actor.Validate(), validateID("category id", categoryID)); err != nil {
		return UpdateCategoryCommand{}, err
	}
	return UpdateCategoryCommand{
		actor:      actor,
		categoryID: categoryID,
		title:      title,
		slug:       slug,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCategoryCommandIsNotConstructed)
}

func (c UpdateCategoryCommand) Actor() identity.Actor { return c.actor }
func (c UpdateCategoryCommand) CategoryID() int64     { return c.categoryID }
func (c UpdateCategoryCommand) Title() *string        { return c.title }
func (c UpdateCategoryCommand) Slug() *string         { return c.slug }

// DeleteCategoryCommand removes a category no menu item refers to.
type DeleteCategoryCommand struct { //nolint:recvcheck //using for validation
	actor      identity.Actor
	categoryID int64

	guard guard.ConstructorGuard
}

func NewDeleteCategoryCommand(actor identity.Actor, categoryID int64) (DeleteCategoryCommand, error) {
	if err := errors.Join(actor.Validate(), validateID("category id", categoryID)); err != nil {
		return DeleteCategoryCommand{}, err
	}
	return DeleteCategoryCommand{actor: actor, categoryID: categoryID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteCategoryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCategoryCommandIsNotConstructed)
}

func (c DeleteCategoryCommand) Actor() identity.Actor { return c.actor }
func (c DeleteCategoryCommand) CategoryID() int64     { return c.categoryID }

func validateID(name string, id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError(name)
	}
	return nil
}
