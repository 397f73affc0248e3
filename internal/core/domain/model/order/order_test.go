package order_test

import (
	"testing"
	"time"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC)

func cartItem(t *testing.T, userID, menuItemID int64, price string, qty int) *cart.Item {
	t.Helper()
	p, err := kernel.NewPrice(decimal.RequireFromString(price))
	require.NoError(t, err)
	m, err := catalog.RestoreMenuItem(menuItemID, "Dish", p, false, 1)
	require.NoError(t, err)
	q, err := kernel.NewQuantity(qty)
	require.NoError(t, err)
	item, err := cart.NewItem(userID, m, q, now)
	require.NoError(t, err)
	return item
}

func TestPlaceOrder(t *testing.T) {
	t.Run("sums cart into a pending order", func(t *testing.T) {
		items := []*cart.Item{
			cartItem(t, 1, 10, "9.00", 2),
			cartItem(t, 1, 11, "4.50", 1),
		}

		o, err := order.PlaceOrder(1, items, now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(1), o.UserID())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.DeliveryCrewID())
		assert.Equal(t, "22.50", o.Total().String())
		assert.Equal(t, now, o.Date())
		require.Len(t, o.Items(), 2)
		assert.Equal(t, int64(10), o.Items()[0].MenuItemID())
		assert.Equal(t, "18.00", o.Items()[0].Price().String())
		assert.Equal(t, "9.00", o.Items()[0].UnitPrice().String())
		assert.Equal(t, 2, o.Items()[0].Quantity().Int())
	})

	t.Run("single line", func(t *testing.T) {
		o, err := order.PlaceOrder(1, []*cart.Item{cartItem(t, 1, 10, "9.00", 2)}, now)

		require.NoError(t, err)
		assert.True(t, o.Total().IsEqual(mustMoney(t, "18")))
	})

	t.Run("empty cart", func(t *testing.T) {
		o, err := order.PlaceOrder(1, nil, now)

		require.ErrorIs(t, err, order.ErrCartIsEmpty)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Nil(t, o)
	})

	t.Run("largest line", func(t *testing.T) {
		o, err := order.PlaceOrder(1, []*cart.Item{cartItem(t, 1, 10, "9999.99", kernel.MaxQuantity)}, now)

		require.NoError(t, err)
		assert.Equal(t, "327669672.33", o.Items()[0].Price().String())
		assert.Equal(t, "327669672.33", o.Total().String())
	})

	t.Run("total above the cap", func(t *testing.T) {
		line := cartItem(t, 1, 10, "9999.99", kernel.MaxQuantity)
		items := make([]*cart.Item, 3052)
		for i := range items {
			items[i] = line
		}

		o, err := order.PlaceOrder(1, items, now)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, err, order.ErrTotalTooLarge)
		assert.Nil(t, o)
	})

	t.Run("foreign cart item", func(t *testing.T) {
		_, err := order.PlaceOrder(1, []*cart.Item{cartItem(t, 2, 10, "9.00", 1)}, now)

		require.ErrorIs(t, err, order.ErrForeignCartItem)
	})
}

func TestOrder_AssignIDs(t *testing.T) {
	o, err := order.PlaceOrder(1, []*cart.Item{cartItem(t, 1, 10, "9.00", 2)}, now)
	require.NoError(t, err)

	require.Error(t, o.AssignIDs(5, []int64{1, 2}))
	require.NoError(t, o.AssignIDs(5, []int64{40}))
	assert.Equal(t, int64(5), o.ID())
	assert.Equal(t, int64(40), o.Items()[0].ID())
	require.Error(t, o.AssignIDs(6, []int64{41}))
}

func TestOrder_Apply(t *testing.T) {
	restore := func(t *testing.T) *order.Order {
		o, err := order.RestoreOrder(3, 1, nil, order.Pending, mustMoney(t, "18.00"), now, nil)
		require.NoError(t, err)
		return o
	}

	t.Run("assigns crew and delivers", func(t *testing.T) {
		o := restore(t)
		crew, status := int64(9), order.Delivered

		require.NoError(t, o.Apply(order.Changes{DeliveryCrewID: &crew, Status: &status}))

		assert.Equal(t, order.Delivered, o.Status())
		require.NotNil(t, o.DeliveryCrewID())
		assert.Equal(t, int64(9), *o.DeliveryCrewID())
		assert.True(t, o.IsAssignedTo(9))
		assert.False(t, o.IsAssignedTo(1))
	})

	t.Run("invalid status leaves order unchanged", func(t *testing.T) {
		o := restore(t)
		crew, status := int64(9), order.Status(2)

		err := o.Apply(order.Changes{DeliveryCrewID: &crew, Status: &status})

		require.ErrorIs(t, err, order.ErrInvalidStatus)
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.DeliveryCrewID())
	})

	t.Run("delivered can be reopened", func(t *testing.T) {
		o := restore(t)
		delivered, pending := order.Delivered, order.Pending

		require.NoError(t, o.Apply(order.Changes{Status: &delivered}))
		require.NoError(t, o.Apply(order.Changes{Status: &pending}))
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("returned crew id is a copy", func(t *testing.T) {
		o := restore(t)
		crew := int64(9)
		require.NoError(t, o.Apply(order.Changes{DeliveryCrewID: &crew}))

		*o.DeliveryCrewID() = 100
		assert.True(t, o.IsAssignedTo(9))
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("rejects stored status out of range", func(t *testing.T) {
		_, err := order.RestoreOrder(3, 1, nil, order.Status(5), kernel.ZeroMoney(), now, nil)
		require.ErrorIs(t, err, order.ErrInvalidStatus)
	})

	t.Run("ownership", func(t *testing.T) {
		o, err := order.RestoreOrder(3, 1, nil, order.Pending, kernel.ZeroMoney(), now, nil)
		require.NoError(t, err)
		assert.True(t, o.IsOwnedBy(1))
		assert.False(t, o.IsOwnedBy(2))
	})

	t.Run("zero value is not valid", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func mustMoney(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(decimal.RequireFromString(s))
	require.NoError(t, err)
	return m
}
