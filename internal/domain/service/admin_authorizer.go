package service

import (
	"context"

	"attendance/internal/domain/entity"

	"github.com/google/uuid"
)

// AdminAuthorizer decides whether a caller may administer attendance for an event.
type AdminAuthorizer interface {
	CanManageEvent(ctx context.Context, adminID, eventID uuid.UUID, roles entity.Roles) (bool, error)
}
