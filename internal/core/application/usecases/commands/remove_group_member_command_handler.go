package commands

import (
	"context"

	"littlelemon/internal/core/domain/services"
)

// RemoveGroupMemberCommandHandler drops a user's membership in a role group.
// An unknown username is reported as not found; a user outside the group is
// left as is.
type RemoveGroupMemberCommandHandler struct {
	uowFactory IdentityUoWFactory
	policy     services.AccessPolicy
}

func NewRemoveGroupMemberCommandHandler(uowFactory IdentityUoWFactory) RemoveGroupMemberCommandHandler {
	return RemoveGroupMemberCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *RemoveGroupMemberCommandHandler) Handle(ctx context.Context, cmd RemoveGroupMemberCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.ManageGroupMembers); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	user, err := users.GetByUsername(ctx, cmd.Username())
	if err != nil {
		return err
	}

	if err = users.RemoveFromGroup(ctx, user.ID(), cmd.Group()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
