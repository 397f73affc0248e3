package commands

import (
	"errors"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/guard"
)

var (
	ErrAddGroupMemberCommandIsNotConstructed = errors.New(
		"AddGroupMemberCommand must be created via NewAddGroupMemberCommand constructor",
	)
	ErrMissingUsername = errors.New("Missing or invalid username")
)

// AddGroupMemberCommand puts a user into one of the role groups.
//
// Example:
//
//	cmd, err := NewAddGroupMemberCommand(actor, identity.GroupManager, "alice")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AddGroupMemberCommand struct { //nolint:recvcheck //using for validation
	actor    identity.Actor
	group    identity.Group
	username string

	guard guard.ConstructorGuard
}

// NewAddGroupMemberCommand validates the actor and the group. The username is
// checked by the handler once the actor is known to be allowed.
func NewAddGroupMemberCommand(actor identity.Actor, group identity.Group, username string) (AddGroupMemberCommand, error) {
	if err := errors.Join(actor.Validate(), group.Validate()); err != nil {
		return AddGroupMemberCommand{}, err
	}

	return AddGroupMemberCommand{
		actor:    actor,
		group:    group,
		username: username,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AddGroupMemberCommand) Validate() error {
	return c.guard.Validate(ErrAddGroupMemberCommandIsNotConstructed)
}

func (c AddGroupMemberCommand) Actor() identity.Actor {
	return c.actor
}

func (c AddGroupMemberCommand) Group() identity.Group {
	return c.group
}

func (c AddGroupMemberCommand) Username() string {
	return c.username
}
