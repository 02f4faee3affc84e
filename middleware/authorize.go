package middleware

import (
	"fmt"

	"storerate/models"

	"github.com/gofiber/fiber/v2"
)

// DenyReason is the stable reason attached to a denied authorization check.
type DenyReason string

const (
	DenyUnauthenticated DenyReason = "unauthenticated"
	DenyRoleMismatch    DenyReason = "role_mismatch"
	DenyNotOwner        DenyReason = "not_owner"
)

// AuthzError reports a denied authorization check.
type AuthzError struct {
	Reason  DenyReason
	Message string
}

func (e *AuthzError) Error() string {
	return fmt.Sprintf("%s: %s", e.Reason, e.Message)
}

// Identity is the authenticated caller, as decoded from the JWT.
type Identity struct {
	UserID uint
	Role   models.Role
}

// Action names every operation that is gated by role.
type Action string

const (
	ActionListStores     Action = "list_stores"
	ActionRateStore      Action = "rate_store"
	ActionViewOwnRating  Action = "view_own_rating"
	ActionOwnerDashboard Action = "owner_dashboard"
	ActionManageUsers    Action = "manage_users"
	ActionManageStores   Action = "manage_stores"
	ActionViewAllRatings Action = "view_all_ratings"
	ActionAdminDashboard Action = "admin_dashboard"
)

// Resource carries the owning user of the touched resource, when one exists.
// OwnerID zero means ownership does not apply to the action.
type Resource struct {
	OwnerID uint
}

// Authorize decides whether identity may perform action on resource.
// Every protected route goes through this check before touching persistence.
func Authorize(id Identity, action Action, res Resource) *AuthzError {
	if id.UserID == 0 || !id.Role.Valid() {
		return &AuthzError{Reason: DenyUnauthenticated, Message: "missing or invalid identity"}
	}

	if !roleAllows(id.Role, action) {
		return &AuthzError{
			Reason:  DenyRoleMismatch,
			Message: fmt.Sprintf("role %s may not perform %s", id.Role, action),
		}
	}

	if res.OwnerID != 0 && res.OwnerID != id.UserID {
		return &AuthzError{Reason: DenyNotOwner, Message: "resource belongs to another user"}
	}

	return nil
}

// roleAllows is the role/action policy table, exhaustive over models.Role.
func roleAllows(role models.Role, action Action) bool {
	switch role {
	case models.RoleAdmin:
		switch action {
		case ActionListStores, ActionManageUsers, ActionManageStores, ActionViewAllRatings, ActionAdminDashboard:
			return true
		}
	case models.RoleStoreOwner:
		switch action {
		case ActionListStores, ActionOwnerDashboard:
			return true
		}
	case models.RoleNormal:
		switch action {
		case ActionListStores, ActionRateStore, ActionViewOwnRating:
			return true
		}
	}
	return false
}

// IdentityFromCtx rebuilds the caller identity set by JWTMiddleware.
func IdentityFromCtx(c *fiber.Ctx) (Identity, bool) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return Identity{}, false
	}
	role, ok := c.Locals("role").(models.Role)
	if !ok {
		return Identity{}, false
	}
	return Identity{UserID: userID, Role: role}, true
}

// RequireAction returns a middleware enforcing the role policy for action.
// Ownership checks that need the request body or a loaded row happen in the
// controller, through Authorize with a populated Resource.
func RequireAction(action Action) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := IdentityFromCtx(c)
		if !ok {
			return JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		}

		if err := Authorize(id, action, Resource{}); err != nil {
			status := fiber.StatusForbidden
			if err.Reason == DenyUnauthenticated {
				status = fiber.StatusUnauthorized
			}
			return JsonResponse(c, status, false, "You do not have permission to access this resource!", fiber.Map{
				"reason": err.Reason,
			})
		}

		return c.Next()
	}
}
