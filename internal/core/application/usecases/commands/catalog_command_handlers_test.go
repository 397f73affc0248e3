package commands_test

import (
	"testing"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoredMenuItem(t *testing.T, id int64, title, price string) *catalog.MenuItem {
	t.Helper()
	p, err := kernel.NewPrice(decimal.RequireFromString(price))
	require.NoError(t, err)
	item, err := catalog.RestoreMenuItem(id, title, p, false, 1)
	require.NoError(t, err)
	return item
}

func TestCreateCategoryCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCategoryCommand(actor(1, identity.Manager), "Main Course", "")
	require.NoError(t, err)

	repo := new(MockCategoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CategoryRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*catalog.Category")).
			Run(func(args mock.Arguments) {
				c := args.Get(1).(*catalog.Category)
				assert.Equal(t, "main-course", c.Slug())
				require.NoError(t, c.AssignID(4))
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCategoryCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateCategoryCommandHandler_Handle_ForbiddenBeforeValidation(t *testing.T) {
	cmd, err := commands.NewCreateCategoryCommand(actor(2, identity.Customer), "", "")
	require.NoError(t, err)

	factory := new(MockCatalogUoWFactory)
	h := commands.NewCreateCategoryCommandHandler(factory)

	_, err = h.Handle(t.Context(), cmd)
	var forbidden *errs.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
	assert.Equal(t, "You are not allowed to create categories!!", forbidden.Reason)
	factory.AssertNotCalled(t, "Create")
}

func TestUpdateCategoryCommandHandler_Handle_RejectedUpdateIsNotPersisted(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateCategoryCommand(actor(1, identity.Manager), 4, ptr("Desserts"), ptr("not a slug"))
	require.NoError(t, err)

	category, err := catalog.RestoreCategory(4, "Sweets", "sweets")
	require.NoError(t, err)

	repo := new(MockCategoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CategoryRepository").Return(repo).Once(),
		repo.On("Get", ctx, int64(4)).Return(category, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateCategoryCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrValueIsInvalid)
	assert.Equal(t, "Sweets", category.Title())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteCategoryCommandHandler_Handle_InUse(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteCategoryCommand(actor(1, identity.Manager), 4)
	require.NoError(t, err)

	repo := new(MockCategoryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CategoryRepository").Return(repo).Once(),
		repo.On("Delete", ctx, int64(4)).Return(errs.NewValueIsInvalidError("category")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteCategoryCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrValueIsInvalid)
	uow.AssertExpectations(t)
}

func TestNewDeleteCategoryCommand_InvalidID(t *testing.T) {
	_, err := commands.NewDeleteCategoryCommand(actor(1, identity.Manager), 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateMenuItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateMenuItemCommand(actor(1, identity.Manager), commands.MenuItemFields{
		Title:      ptr("Lemon Dessert"),
		Price:      ptr("5.50"),
		CategoryID: ptr(int64(2)),
	})
	require.NoError(t, err)

	repo := new(MockMenuItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.AnythingOfType("*catalog.MenuItem")).
			Run(func(args mock.Arguments) {
				item := args.Get(1).(*catalog.MenuItem)
				assert.Equal(t, "5.50", item.Price().String())
				assert.False(t, item.Featured())
				require.NoError(t, item.AssignID(11))
			}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateMenuItemCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(11), id)
	repo.AssertExpectations(t)
}

func TestCreateMenuItemCommandHandler_Handle_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		fields commands.MenuItemFields
		target error
	}{
		{"missing title", commands.MenuItemFields{Price: ptr("1.00"), CategoryID: ptr(int64(1))}, errs.ErrValueIsRequired},
		{"missing price", commands.MenuItemFields{Title: ptr("Soup"), CategoryID: ptr(int64(1))}, errs.ErrValueIsRequired},
		{"missing category", commands.MenuItemFields{Title: ptr("Soup"), Price: ptr("1.00")}, errs.ErrValueIsRequired},
		{"price not a number", commands.MenuItemFields{
			Title: ptr("Soup"), Price: ptr("abc"), CategoryID: ptr(int64(1)),
		}, errs.ErrValueIsInvalid},
		{"price too large", commands.MenuItemFields{
			Title: ptr("Soup"), Price: ptr("10000"), CategoryID: ptr(int64(1)),
		}, errs.ErrValueIsOutOfRange},
		{"price too precise", commands.MenuItemFields{
			Title: ptr("Soup"), Price: ptr("1.005"), CategoryID: ptr(int64(1)),
		}, errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := commands.NewCreateMenuItemCommand(actor(1, identity.Manager), tt.fields)
			require.NoError(t, err)

			factory := new(MockCatalogUoWFactory)
			h := commands.NewCreateMenuItemCommandHandler(factory)
			_, err = h.Handle(t.Context(), cmd)
			require.ErrorIs(t, err, tt.target)
			factory.AssertNotCalled(t, "Create")
		})
	}
}

func TestCreateMenuItemCommandHandler_Handle_Forbidden(t *testing.T) {
	for _, role := range []identity.Role{identity.Customer, identity.DeliveryCrew} {
		cmd, err := commands.NewCreateMenuItemCommand(actor(5, role), commands.MenuItemFields{})
		require.NoError(t, err)

		h := commands.NewCreateMenuItemCommandHandler(new(MockCatalogUoWFactory))
		_, err = h.Handle(t.Context(), cmd)
		var forbidden *errs.ForbiddenError
		require.ErrorAs(t, err, &forbidden)
		assert.Equal(t, "You are not allowed to create menu items!!", forbidden.Reason)
	}
}

func TestUpdateMenuItemCommandHandler_Handle_Partial(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateMenuItemCommand(actor(1, identity.Manager), 11,
		commands.MenuItemFields{Featured: ptr(true)}, true)
	require.NoError(t, err)

	item := restoredMenuItem(t, 11, "Pasta", "9.00")

	repo := new(MockMenuItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(repo).Once(),
		repo.On("Get", ctx, int64(11)).Return(item, nil).Once(),
		repo.On("Update", ctx, item).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateMenuItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.True(t, item.Featured())
	assert.Equal(t, "Pasta", item.Title())
	repo.AssertExpectations(t)
}

func TestUpdateMenuItemCommandHandler_Handle_FullUpdateRequiresAllFields(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewUpdateMenuItemCommand(actor(1, identity.Manager), 11,
		commands.MenuItemFields{Title: ptr("Risotto")}, false)
	require.NoError(t, err)

	item := restoredMenuItem(t, 11, "Pasta", "9.00")

	repo := new(MockMenuItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(repo).Once(),
		repo.On("Get", ctx, int64(11)).Return(item, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateMenuItemCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrValueIsRequired)
	assert.Equal(t, "Pasta", item.Title())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateMenuItemCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewUpdateMenuItemCommand(actor(1, identity.Manager), 99, commands.MenuItemFields{}, true)

	repo := new(MockMenuItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(repo).Once(),
		repo.On("Get", ctx, int64(99)).Return(nil, errs.NewObjectNotFoundError("menu item", int64(99))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateMenuItemCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
}

func TestDeleteMenuItemCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteMenuItemCommand(actor(1, identity.Manager), 11)
	require.NoError(t, err)

	repo := new(MockMenuItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("MenuItemRepository").Return(repo).Once(),
		repo.On("Delete", ctx, int64(11)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteMenuItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}
