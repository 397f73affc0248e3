package services_test

import (
	"testing"
	"time"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func actor(t *testing.T, id int64, role identity.Role) identity.Actor {
	t.Helper()
	a, err := identity.NewActor(id, "user", role)
	require.NoError(t, err)
	return a
}

func TestAccessPolicy_Authorize(t *testing.T) {
	policy := services.NewAccessPolicy()

	type allowed struct{ manager, crew, customer bool }
	tests := []struct {
		op   services.Operation
		want allowed
	}{
		{services.ManageGroupMembers, allowed{true, false, false}},
		{services.ViewCatalog, allowed{true, true, true}},
		{services.CreateCategory, allowed{true, false, false}},
		{services.UpdateCategory, allowed{true, false, false}},
		{services.DeleteCategory, allowed{true, false, false}},
		{services.CreateMenuItem, allowed{true, false, false}},
		{services.UpdateMenuItem, allowed{true, false, false}},
		{services.DeleteMenuItem, allowed{true, false, false}},
		{services.BulkModifyMenuItems, allowed{false, false, false}},
		{services.ManageCart, allowed{false, false, true}},
		{services.PlaceOrder, allowed{false, false, true}},
		{services.ListOrders, allowed{true, true, true}},
		{services.ReplaceOrder, allowed{true, false, false}},
		{services.PatchOrder, allowed{true, true, false}},
		{services.DeleteOrder, allowed{true, false, false}},
	}

	check := func(t *testing.T, err error, want bool) {
		t.Helper()
		if want {
			require.NoError(t, err)
			return
		}
		require.ErrorIs(t, err, errs.ErrForbidden)
	}

	for _, tt := range tests {
		t.Run(tt.op.String(), func(t *testing.T) {
			check(t, policy.Authorize(actor(t, 1, identity.Manager), tt.op), tt.want.manager)
			check(t, policy.Authorize(actor(t, 2, identity.DeliveryCrew), tt.op), tt.want.crew)
			check(t, policy.Authorize(actor(t, 3, identity.Customer), tt.op), tt.want.customer)
		})
	}
}

func TestAccessPolicy_ForbiddenReasons(t *testing.T) {
	policy := services.NewAccessPolicy()

	err := policy.Authorize(actor(t, 3, identity.Customer), services.CreateMenuItem)
	var forbidden *errs.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
	assert.Equal(t, "You are not allowed to create menu items!!", forbidden.Reason)

	err = policy.Authorize(actor(t, 2, identity.DeliveryCrew), services.ReplaceOrder)
	require.ErrorAs(t, err, &forbidden)
	assert.Equal(t, "You are not allowed to update complete order!!", forbidden.Reason)
}

func TestAccessPolicy_RejectsUnconstructedActor(t *testing.T) {
	err := services.NewAccessPolicy().Authorize(identity.Actor{}, services.ViewCatalog)
	require.ErrorIs(t, err, identity.ErrActorIsNotConstructed)
}

func TestAccessPolicy_AuthorizeOrder(t *testing.T) {
	policy := services.NewAccessPolicy()
	crewID := int64(2)
	o, err := order.RestoreOrder(10, 3, &crewID, order.Pending, kernel.ZeroMoney(), time.Now(), nil)
	require.NoError(t, err)

	t.Run("owner views own order", func(t *testing.T) {
		require.NoError(t, policy.AuthorizeOrder(actor(t, 3, identity.Customer), services.ViewOrder, o))
	})

	t.Run("manager cannot view someone else's single order", func(t *testing.T) {
		err := policy.AuthorizeOrder(actor(t, 1, identity.Manager), services.ViewOrder, o)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("assigned crew patches", func(t *testing.T) {
		require.NoError(t, policy.AuthorizeOrder(actor(t, 2, identity.DeliveryCrew), services.PatchOrder, o))
	})

	t.Run("other crew cannot patch", func(t *testing.T) {
		err := policy.AuthorizeOrder(actor(t, 4, identity.DeliveryCrew), services.PatchOrder, o)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("manager patches any order", func(t *testing.T) {
		require.NoError(t, policy.AuthorizeOrder(actor(t, 1, identity.Manager), services.PatchOrder, o))
	})

	t.Run("role check comes first", func(t *testing.T) {
		err := policy.AuthorizeOrder(actor(t, 3, identity.Customer), services.DeleteOrder, o)
		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestAccessPolicy_ListScope(t *testing.T) {
	policy := services.NewAccessPolicy()

	assert.Equal(t, services.AllOrders, policy.ListScope(actor(t, 1, identity.Manager)))
	assert.Equal(t, services.AssignedOrders, policy.ListScope(actor(t, 2, identity.DeliveryCrew)))
	assert.Equal(t, services.OwnOrders, policy.ListScope(actor(t, 3, identity.Customer)))
}
