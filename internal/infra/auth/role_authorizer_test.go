package auth

import (
	"context"
	"testing"

	"attendance/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleAuthorizer_CanManageEvent(t *testing.T) {
	authorizer := NewRoleAuthorizer()
	ctx := context.Background()

	tests := []struct {
		name    string
		adminID uuid.UUID
		eventID uuid.UUID
		roles   entity.Roles
		want    bool
	}{
		{"admin role", uuid.New(), uuid.New(), entity.Roles{entity.RoleMember, entity.RoleAdmin}, true},
		{"member only", uuid.New(), uuid.New(), entity.Roles{entity.RoleMember}, false},
		{"no roles", uuid.New(), uuid.New(), nil, false},
		{"nil admin", uuid.Nil, uuid.New(), entity.Roles{entity.RoleAdmin}, false},
		{"nil event", uuid.New(), uuid.Nil, entity.Roles{entity.RoleAdmin}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := authorizer.CanManageEvent(ctx, tt.adminID, tt.eventID, tt.roles)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
