package middleware

import (
	"strings"

	"attendance/internal/delivery/api/response"
	deliverycontext "attendance/internal/delivery/context"
	"attendance/internal/domain/entity"
	"attendance/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuthMiddleware authenticates bearer tokens and authorizes event administration.
type AuthMiddleware struct {
	tokenSvc   service.TokenService
	authorizer service.AdminAuthorizer
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, authorizer service.AdminAuthorizer) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, authorizer: authorizer}
}

// Authenticate validates the access token and stores the caller's identity.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetIdentity(c, claims.UserID, entity.RolesFromStrings(claims.Roles))

		return next(c)
	}
}

// RequireEventAdmin allows the request only when the caller may administer
// the event named by the :eventId path parameter. It must run after Authenticate.
func (m *AuthMiddleware) RequireEventAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID, ok := GetUserID(c)
		if !ok {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
		}

		eventID, err := uuid.Parse(c.Param("eventId"))
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid event ID")
		}

		roles, _ := GetRoles(c)
		allowed, err := m.authorizer.CanManageEvent(c.Request().Context(), userID, eventID, roles)
		if err != nil {
			return err
		}

		if !allowed {
			return response.Forbidden(c, "FORBIDDEN", "Permission denied: event administrator required")
		}

		return next(c)
	}
}

// GetUserID returns the authenticated caller's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetUserID(c)
}

// GetRoles returns the authenticated caller's roles.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	return deliverycontext.GetRoles(c)
}
