package commands

import (
	"context"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/ports"
)

// CreateUserCommandHandler hashes the password, stores the account and puts it
// into the requested groups. Returns the new user id.
type CreateUserCommandHandler struct {
	uowFactory IdentityUoWFactory
	hasher     ports.PasswordHasher
}

func NewCreateUserCommandHandler(uowFactory IdentityUoWFactory, hasher ports.PasswordHasher) CreateUserCommandHandler {
	return CreateUserCommandHandler{uowFactory: uowFactory, hasher: hasher}
}

func (h *CreateUserCommandHandler) Handle(ctx context.Context, cmd CreateUserCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	hash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return 0, err
	}
	user, err := identity.NewUser(cmd.Username(), cmd.Email(), hash)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.UserRepository()
	if err = repo.Add(ctx, user); err != nil {
		return 0, err
	}
	for _, g := range cmd.Groups() {
		if err = repo.AddToGroup(ctx, user.ID(), g); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return user.ID(), nil
}
