package orderrepo_test

import (
	"testing"
	"time"

	"littlelemon/internal/adapters/out/postgres/orderrepo"
	"littlelemon/internal/adapters/out/postgres/sqlitetest"
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func placeOrder(t *testing.T, userID int64) *order.Order {
	t.Helper()
	now := time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC)

	var items []*cart.Item
	for i, p := range []string{"9.00", "4.50"} {
		price, err := kernel.NewPrice(decimal.RequireFromString(p))
		require.NoError(t, err)
		m, err := catalog.RestoreMenuItem(int64(i+1), "Dish", price, false, 1)
		require.NoError(t, err)
		q, err := kernel.NewQuantity(i + 1)
		require.NoError(t, err)
		item, err := cart.NewItem(userID, m, q, now)
		require.NoError(t, err)
		items = append(items, item)
	}

	o, err := order.PlaceOrder(userID, items, now)
	require.NoError(t, err)
	return o
}

func TestGormOrderRepository_AddAndGet(t *testing.T) {
	ctx := t.Context()
	repo := orderrepo.NewGormOrderRepository(sqlitetest.Open(t))
	o := placeOrder(t, 7)

	require.NoError(t, repo.Add(ctx, o))
	require.NotZero(t, o.ID())
	for _, item := range o.Items() {
		assert.NotZero(t, item.ID())
	}

	loaded, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(7), loaded.UserID())
	assert.Equal(t, "18.00", loaded.Total().String())
	assert.Equal(t, order.Pending, loaded.Status())
	assert.Nil(t, loaded.DeliveryCrewID())
	require.Len(t, loaded.Items(), 2)
	assert.Equal(t, int64(1), loaded.Items()[0].MenuItemID())
	assert.Equal(t, "9.00", loaded.Items()[0].Price().String())
	assert.Equal(t, int64(2), loaded.Items()[1].MenuItemID())
	assert.Equal(t, 2, loaded.Items()[1].Quantity().Int())
	assert.Equal(t, "9.00", loaded.Items()[1].Price().String())
}

func TestGormOrderRepository_Update(t *testing.T) {
	ctx := t.Context()
	repo := orderrepo.NewGormOrderRepository(sqlitetest.Open(t))
	o := placeOrder(t, 7)
	require.NoError(t, repo.Add(ctx, o))

	crew, delivered := int64(3), order.Delivered
	require.NoError(t, o.Apply(order.Changes{DeliveryCrewID: &crew, Status: &delivered}))
	require.NoError(t, repo.Update(ctx, o))

	loaded, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, loaded.Status())
	assert.True(t, loaded.IsAssignedTo(3))
	assert.Len(t, loaded.Items(), 2)

	pending := order.Pending
	require.NoError(t, o.Apply(order.Changes{Status: &pending}))
	require.NoError(t, repo.Update(ctx, o))
	loaded, err = repo.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.Equal(t, order.Pending, loaded.Status(), "zero status must be written too")
}

func TestGormOrderRepository_NotFound(t *testing.T) {
	ctx := t.Context()
	repo := orderrepo.NewGormOrderRepository(sqlitetest.Open(t))

	_, err := repo.Get(ctx, 404)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	require.ErrorIs(t, repo.Delete(ctx, 404), errs.ErrObjectNotFound)

	ghost, err := order.RestoreOrder(404, 1, nil, order.Pending, kernel.ZeroMoney(), time.Now(), nil)
	require.NoError(t, err)
	require.ErrorIs(t, repo.Update(ctx, ghost), errs.ErrObjectNotFound)
}

func TestGormOrderRepository_DeleteRemovesItems(t *testing.T) {
	ctx := t.Context()
	db := sqlitetest.Open(t)
	repo := orderrepo.NewGormOrderRepository(db)
	o := placeOrder(t, 7)
	require.NoError(t, repo.Add(ctx, o))

	require.NoError(t, repo.Delete(ctx, o.ID()))

	var items int64
	require.NoError(t, db.Model(&orderrepo.OrderItemDTO{}).Count(&items).Error)
	assert.Zero(t, items)
}
