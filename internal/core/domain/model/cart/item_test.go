package cart_test

import (
	"testing"
	"time"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuItem(t *testing.T, id int64, p string) *catalog.MenuItem {
	t.Helper()
	price, err := kernel.NewPrice(decimal.RequireFromString(p))
	require.NoError(t, err)
	m, err := catalog.RestoreMenuItem(id, "Greek Salad", price, false, 1)
	require.NoError(t, err)
	return m
}

func TestNewItem(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	qty, err := kernel.NewQuantity(2)
	require.NoError(t, err)

	t.Run("snapshots price", func(t *testing.T) {
		m := menuItem(t, 5, "9.00")

		item, err := cart.NewItem(11, m, qty, now)

		require.NoError(t, err)
		require.NoError(t, item.Validate())
		assert.Equal(t, int64(11), item.UserID())
		assert.Equal(t, int64(5), item.MenuItemID())
		assert.Equal(t, 2, item.Quantity().Int())
		assert.Equal(t, "9.00", item.UnitPrice().String())
		assert.Equal(t, "18.00", item.Price().String())
		assert.Equal(t, now, item.CreatedAt())
	})

	t.Run("later price changes do not touch the item", func(t *testing.T) {
		m := menuItem(t, 5, "9.00")
		item, err := cart.NewItem(11, m, qty, now)
		require.NoError(t, err)

		cheaper, err := kernel.NewPrice(decimal.RequireFromString("1.00"))
		require.NoError(t, err)
		require.NoError(t, m.Apply(catalog.MenuItemChanges{Price: &cheaper}))

		assert.Equal(t, "9.00", item.UnitPrice().String())
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := cart.NewItem(11, menuItem(t, 5, "9.00"), kernel.Quantity{}, now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects unconstructed menu item", func(t *testing.T) {
		_, err := cart.NewItem(11, &catalog.MenuItem{}, qty, now)
		require.ErrorIs(t, err, catalog.ErrMenuItemIsNotConstructed)
	})

	t.Run("rejects missing user", func(t *testing.T) {
		_, err := cart.NewItem(0, menuItem(t, 5, "9.00"), qty, now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
