package middleware

import (
	"testing"

	"storerate/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize_Unauthenticated(t *testing.T) {
	err := Authorize(Identity{}, ActionListStores, Resource{})
	require.NotNil(t, err)
	assert.Equal(t, DenyUnauthenticated, err.Reason)

	err = Authorize(Identity{UserID: 1, Role: models.Role("superuser")}, ActionListStores, Resource{})
	require.NotNil(t, err)
	assert.Equal(t, DenyUnauthenticated, err.Reason)
}

func TestAuthorize_RolePolicy(t *testing.T) {
	cases := []struct {
		role    models.Role
		action  Action
		allowed bool
	}{
		{models.RoleAdmin, ActionListStores, true},
		{models.RoleAdmin, ActionManageUsers, true},
		{models.RoleAdmin, ActionManageStores, true},
		{models.RoleAdmin, ActionViewAllRatings, true},
		{models.RoleAdmin, ActionAdminDashboard, true},
		{models.RoleAdmin, ActionRateStore, false},
		{models.RoleAdmin, ActionOwnerDashboard, false},

		{models.RoleStoreOwner, ActionListStores, true},
		{models.RoleStoreOwner, ActionOwnerDashboard, true},
		{models.RoleStoreOwner, ActionRateStore, false},
		{models.RoleStoreOwner, ActionManageUsers, false},
		{models.RoleStoreOwner, ActionManageStores, false},
		{models.RoleStoreOwner, ActionViewAllRatings, false},

		{models.RoleNormal, ActionListStores, true},
		{models.RoleNormal, ActionRateStore, true},
		{models.RoleNormal, ActionViewOwnRating, true},
		{models.RoleNormal, ActionManageUsers, false},
		{models.RoleNormal, ActionManageStores, false},
		{models.RoleNormal, ActionAdminDashboard, false},
	}

	for _, tc := range cases {
		err := Authorize(Identity{UserID: 1, Role: tc.role}, tc.action, Resource{})
		if tc.allowed {
			assert.Nil(t, err, "%s should perform %s", tc.role, tc.action)
		} else {
			require.NotNil(t, err, "%s should not perform %s", tc.role, tc.action)
			assert.Equal(t, DenyRoleMismatch, err.Reason)
		}
	}
}

func TestAuthorize_Ownership(t *testing.T) {
	id := Identity{UserID: 5, Role: models.RoleNormal}

	assert.Nil(t, Authorize(id, ActionRateStore, Resource{OwnerID: 5}))

	err := Authorize(id, ActionRateStore, Resource{OwnerID: 6})
	require.NotNil(t, err)
	assert.Equal(t, DenyNotOwner, err.Reason)

	// Zero owner means ownership does not apply
	assert.Nil(t, Authorize(id, ActionRateStore, Resource{}))
}
