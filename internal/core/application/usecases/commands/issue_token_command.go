package commands

import (
	"errors"
	"strings"

	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

var ErrIssueTokenCommandIsNotConstructed = errors.New(
	"IssueTokenCommand must be created via NewIssueTokenCommand constructor",
)

// IssueTokenCommand exchanges credentials for an access token.
type IssueTokenCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

func NewIssueTokenCommand(username, password string) (IssueTokenCommand, error) {
	username = strings.TrimSpace(username)

	var usernameErr, passwordErr error
	if username == "" {
		usernameErr = errs.NewValueIsRequiredError("username")
	}
	if password == "" {
		passwordErr = errs.NewValueIsRequiredError("password")
	}
	if err := errors.Join(usernameErr, passwordErr); err != nil {
		return IssueTokenCommand{}, err
	}

	return IssueTokenCommand{username: username, password: password, guard: guard.NewConstructorGuard()}, nil
}

func (c IssueTokenCommand) Validate() error {
	return c.guard.Validate(ErrIssueTokenCommandIsNotConstructed)
}

func (c IssueTokenCommand) Username() string { return c.username }
func (c IssueTokenCommand) Password() string { return c.password }
