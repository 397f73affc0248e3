package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/guard"
)

var ErrRemoveGroupMemberCommandIsNotConstructed = errors.New(
	"RemoveGroupMemberCommand must be created via NewRemoveGroupMemberCommand constructor",
)

// RemoveGroupMemberCommand takes a user out of one of the role groups.
type RemoveGroupMemberCommand struct { //nolint:recvcheck //using for validation
	actor    identity.Actor
	group    identity.Group
	username string

	guard guard.ConstructorGuard
}

func NewRemoveGroupMemberCommand(
	actor identity.Actor,
	group identity.Group,
	username string,
) (RemoveGroupMemberCommand, error) {
	if err := errors.Join(actor.Validate(), group.Validate()); err != nil {
		return RemoveGroupMemberCommand{}, err
	}

	return RemoveGroupMemberCommand{
		actor:    actor,
		group:    group,
		username: username,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveGroupMemberCommand) Validate() error {
	return c.guard.Validate(ErrRemoveGroupMemberCommandIsNotConstructed)
}

func (c RemoveGroupMemberCommand) Actor() identity.Actor {
	return c.actor
}

func (c RemoveGroupMemberCommand) Group() identity.Group {
	return c.group
}

func (c RemoveGroupMemberCommand) Username() string {
	return c.username
}
