//go:build unit

package user_test

import (
	"testing"

	"court-slot-engine/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	for _, s := range []string{"customer", "owner", "admin"} {
		r, err := user.NewRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, r.String())
	}

	_, err := user.NewRole("viewer")
	require.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestActor_CanManage(t *testing.T) {
	ownerID := uuid.New()

	assert.True(t, user.NewActor(ownerID, user.RoleOwner).CanManage(ownerID))
	assert.False(t, user.NewActor(uuid.New(), user.RoleOwner).CanManage(ownerID))
	assert.True(t, user.NewActor(uuid.New(), user.RoleAdmin).CanManage(ownerID))
	assert.False(t, user.NewActor(uuid.Nil, user.RoleCustomer).CanManage(uuid.Nil))
}
