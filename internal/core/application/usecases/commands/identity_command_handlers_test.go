package commands_test

import (
	"testing"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewIssueTokenCommand_RequiresCredentials(t *testing.T) {
	_, err := commands.NewIssueTokenCommand(" ", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "username")
	assert.Contains(t, err.Error(), "password")
}

func TestIssueTokenCommandHandler_Handle(t *testing.T) {
	tests := []struct {
		name     string
		user     *identity.User
		lookup   error
		verified bool
		wantErr  error
	}{
		{name: "valid credentials", verified: true},
		{name: "wrong password", verified: false, wantErr: errs.ErrUnauthenticated},
		{name: "unknown user", lookup: errs.NewObjectNotFoundError("username", "alice"), wantErr: errs.ErrUnauthenticated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			cmd, err := commands.NewIssueTokenCommand("alice", "s3cret")
			require.NoError(t, err)

			alice := restoredUser(t, 3, "alice")
			repo := new(MockUserRepository)
			uow := new(MockUoW)
			uow.On("UserRepository").Return(repo).Once()
			if tt.lookup != nil {
				repo.On("GetByUsername", ctx, "alice").Return(nil, tt.lookup).Once()
			} else {
				repo.On("GetByUsername", ctx, "alice").Return(alice, nil).Once()
			}
			factory := new(MockIdentityUoWFactory)
			factory.On("Create").Return(uow).Once()

			hasher := new(MockHasher)
			hasher.On("Verify", "s3cret", "hash").Return(tt.verified, nil).Maybe()
			tokens := new(MockTokenService)
			tokens.On("Issue", int64(3), "alice").Return("signed", nil).Maybe()

			h := commands.NewIssueTokenCommandHandler(factory, hasher, tokens)
			token, err := h.Handle(ctx, cmd)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				tokens.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "signed", token)
			uow.AssertNotCalled(t, "Begin", mock.Anything)
		})
	}
}

func TestCreateUserCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateUserCommand("mario", "mario@example.com", "pizza", identity.GroupManager)
	require.NoError(t, err)

	repo := new(MockUserRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*identity.User")).
			Run(func(args mock.Arguments) {
				u := args.Get(1).(*identity.User)
				assert.Equal(t, "argon-hash", u.PasswordHash())
				require.NoError(t, u.AssignID(12))
			}).Return(nil).Once(),
		repo.On("AddToGroup", ctx, int64(12), identity.GroupManager).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockIdentityUoWFactory)
	factory.On("Create").Return(uow).Once()
	hasher := new(MockHasher)
	hasher.On("Hash", "pizza").Return("argon-hash", nil).Once()

	h := commands.NewCreateUserCommandHandler(factory, hasher)
	id, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewCreateUserCommand_RejectsUnknownGroup(t *testing.T) {
	_, err := commands.NewCreateUserCommand("mario", "", "pizza", identity.Group("Chefs"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
