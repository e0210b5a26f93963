package context

import (
	"attendance/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// KeyUserID is the key for the authenticated user ID in echo.Context.
	KeyUserID ContextKey = "user_id"

	// KeyRoles is the key for the authenticated user's roles in echo.Context.
	KeyRoles ContextKey = "roles"
)

// SetIdentity stores the authenticated caller in echo.Context.
func SetIdentity(c echo.Context, userID uuid.UUID, roles entity.Roles) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyRoles), roles)
}

// GetUserID returns the authenticated user ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(string(KeyUserID)).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// GetRoles returns the authenticated user's roles.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(string(KeyRoles)).(entity.Roles)

	return roles, ok
}
