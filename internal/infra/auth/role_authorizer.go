package auth

import (
	"context"

	"attendance/internal/domain/entity"
	"attendance/internal/domain/service"

	"github.com/google/uuid"
)

// roleAuthorizer grants event administration to callers holding the admin role.
// Deployments with per-event admin lists replace it with their own AdminAuthorizer.
type roleAuthorizer struct{}

// NewRoleAuthorizer creates the default AdminAuthorizer.
func NewRoleAuthorizer() service.AdminAuthorizer {
	return roleAuthorizer{}
}

func (roleAuthorizer) CanManageEvent(_ context.Context, adminID, eventID uuid.UUID, roles entity.Roles) (bool, error) {
	if adminID == uuid.Nil || eventID == uuid.Nil {
		return false, nil
	}

	return roles.Contains(entity.RoleAdmin), nil
}
