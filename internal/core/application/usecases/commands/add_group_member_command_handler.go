package commands

import (
	"context"
	"strings"

	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"
)

// AddGroupMemberCommandHandler adds users to role groups. Adding an existing
// member succeeds without changes.
type AddGroupMemberCommandHandler struct {
	uowFactory IdentityUoWFactory
	policy     services.AccessPolicy
}

func NewAddGroupMemberCommandHandler(uowFactory IdentityUoWFactory) AddGroupMemberCommandHandler {
	return AddGroupMemberCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewAccessPolicy(),
	}
}

func (h *AddGroupMemberCommandHandler) Handle(ctx context.Context, cmd AddGroupMemberCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := h.policy.Authorize(cmd.Actor(), services.ManageGroupMembers); err != nil {
		return err
	}

	username := strings.TrimSpace(cmd.Username())
	if username == "" {
		return errs.NewValueIsRequiredErrorWithCause("username", ErrMissingUsername)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	users := uow.UserRepository()
	user, err := users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}

	if err = users.AddToGroup(ctx, user.ID(), cmd.Group()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
