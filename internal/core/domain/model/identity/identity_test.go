package identity_test

import (
	"testing"

	"littlelemon/internal/core/domain/model/identity"
	"littlelemon/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleFromGroups(t *testing.T) {
	tests := []struct {
		name   string
		groups []identity.Group
		want   identity.Role
	}{
		{name: "no groups is customer", groups: nil, want: identity.Customer},
		{name: "unknown group is customer", groups: []identity.Group{"Chefs"}, want: identity.Customer},
		{name: "manager", groups: []identity.Group{identity.GroupManager}, want: identity.Manager},
		{name: "delivery crew", groups: []identity.Group{identity.GroupDeliveryCrew}, want: identity.DeliveryCrew},
		{
			name:   "manager is checked first",
			groups: []identity.Group{identity.GroupDeliveryCrew, identity.GroupManager},
			want:   identity.Manager,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, identity.RoleFromGroups(tt.groups))
		})
	}
}

func TestParseGroupSlug(t *testing.T) {
	g, err := identity.ParseGroupSlug("manager")
	require.NoError(t, err)
	assert.Equal(t, identity.GroupManager, g)
	assert.Equal(t, "manager", g.Slug())

	g, err = identity.ParseGroupSlug("delivery-crew")
	require.NoError(t, err)
	assert.Equal(t, identity.GroupDeliveryCrew, g)
	assert.Equal(t, "delivery crew", g.MemberNoun())

	_, err = identity.ParseGroupSlug("admins")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestActorFromUser(t *testing.T) {
	u, err := identity.RestoreUser(7, "mario", "mario@littlelemon.test", "hash",
		[]identity.Group{identity.GroupDeliveryCrew})
	require.NoError(t, err)

	actor, err := identity.ActorFromUser(u)

	require.NoError(t, err)
	require.NoError(t, actor.Validate())
	assert.Equal(t, int64(7), actor.UserID())
	assert.Equal(t, "mario", actor.Username())
	assert.True(t, actor.IsDeliveryCrew())
	assert.False(t, actor.IsManager())
	assert.False(t, actor.IsCustomer())
}

func TestActor_ZeroValueIsInvalid(t *testing.T) {
	var a identity.Actor
	assert.Equal(t, identity.ErrActorIsNotConstructed, a.Validate())
}

func TestNewUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		u, err := identity.NewUser(" alice ", "alice@littlelemon.test", "$argon2id$...")
		require.NoError(t, err)
		assert.Equal(t, "alice", u.Username())
		assert.Zero(t, u.ID())
		require.NoError(t, u.AssignID(3))
		assert.Equal(t, int64(3), u.ID())
		require.Error(t, u.AssignID(4))
	})

	t.Run("username and hash are required", func(t *testing.T) {
		_, err := identity.NewUser("", "", "")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "username")
		assert.Contains(t, err.Error(), "password hash")
	})
}

func TestUser_InGroup(t *testing.T) {
	u, err := identity.RestoreUser(1, "adrian", "", "hash", []identity.Group{identity.GroupManager})
	require.NoError(t, err)

	assert.True(t, u.InGroup(identity.GroupManager))
	assert.False(t, u.InGroup(identity.GroupDeliveryCrew))
}
