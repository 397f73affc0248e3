package commands

import (
	"context"
	"errors"
	"fmt"

	"littlelemon/internal/core/ports"
	"littlelemon/internal/pkg/errs"
)

// IssueTokenCommandHandler checks a username and password and signs a token for
// the account. Unknown users and wrong passwords fail the same way.
type IssueTokenCommandHandler struct {
	uowFactory IdentityUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenService
}

func NewIssueTokenCommandHandler(
	uowFactory IdentityUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
) IssueTokenCommandHandler {
	return IssueTokenCommandHandler{uowFactory: uowFactory, hasher: hasher, tokens: tokens}
}

func (h *IssueTokenCommandHandler) Handle(ctx context.Context, cmd IssueTokenCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	uow := h.uowFactory.Create()
	user, err := uow.UserRepository().GetByUsername(ctx, cmd.Username())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", fmt.Errorf("%w: invalid credentials", errs.ErrUnauthenticated)
		}
		return "", err
	}

	ok, err := h.hasher.Verify(cmd.Password(), user.PasswordHash())
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: invalid credentials", errs.ErrUnauthenticated)
	}

	return h.tokens.Issue(user.ID(), user.Username())
}
