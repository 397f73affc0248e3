package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrCreateUserCommandIsNotConstructed = errors.New(
	"CreateUserCommand must be created via NewCreateUserCommand constructor",
)

// CreateUserCommand bootstraps an account from the command line.
type CreateUserCommand struct { //nolint:recvcheck //using for validation
	username string
	email    string
	password string
	groups   []identity.Group

	guard guard.ConstructorGuard
}

func NewCreateUserCommand(username, email, password string, groups ...identity.Group) (CreateUserCommand, error) {
	var passwordErr error
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	groupErrs := make([]error, 0, len(groups)+1)
	groupErrs = append(groupErrs, passwordErr)
	for _, g := range groups {
		groupErrs = append(groupErrs, g.Validate())
	}
	if err := errors.Join(groupErrs...); err != nil {
		return CreateUserCommand{}, err
	}

	return CreateUserCommand{
		username: username,
		email:    email,
		password: password,
		groups:   groups,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c CreateUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateUserCommandIsNotConstructed)
}

func (c CreateUserCommand) Username() string         { return c.username }
func (c CreateUserCommand) Email() string            { return c.email }
func (c CreateUserCommand) Password() string         { return c.password }
func (c CreateUserCommand) Groups() []identity.Group { return c.groups }
