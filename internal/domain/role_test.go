package domain_test

import (
	"testing"

	"fleetrent-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestActorFor(t *testing.T) {
	storeID := int32(3)

	t.Run("Regular user", func(t *testing.T) {
		actor := domain.ActorFor(&domain.User{ID: 1})
		assert.Equal(t, domain.RoleRegular, actor.Role)
		assert.False(t, actor.IsAdmin())
		assert.False(t, actor.IsSuper())
	})

	t.Run("Admin with managed store", func(t *testing.T) {
		actor := domain.ActorFor(&domain.User{ID: 2, IsAdmin: true, ManagedStoreID: &storeID})
		assert.Equal(t, domain.RoleStoreAdmin, actor.Role)
		assert.Equal(t, storeID, actor.StoreID)
		assert.True(t, actor.IsAdmin())
		assert.False(t, actor.IsSuper())
	})

	t.Run("Admin without managed store", func(t *testing.T) {
		actor := domain.ActorFor(&domain.User{ID: 3, IsAdmin: true})
		assert.Equal(t, domain.RoleSuper, actor.Role)
		assert.True(t, actor.IsAdmin())
		assert.True(t, actor.IsSuper())
	})
}

func TestActorCanAccessStore(t *testing.T) {
	t.Run("Super accesses everything", func(t *testing.T) {
		actor := domain.Actor{UserID: 1, Role: domain.RoleSuper}
		assert.True(t, actor.CanAccessStore(1))
		assert.True(t, actor.CanAccessStore(99))
	})

	t.Run("Store admin limited to managed store", func(t *testing.T) {
		actor := domain.Actor{UserID: 1, Role: domain.RoleStoreAdmin, StoreID: 3}
		assert.True(t, actor.CanAccessStore(3))
		assert.True(t, actor.CanAccessStore(1, 3))
		assert.False(t, actor.CanAccessStore(1, 2))
	})

	t.Run("Regular user never", func(t *testing.T) {
		actor := domain.Actor{UserID: 1, Role: domain.RoleRegular}
		assert.False(t, actor.CanAccessStore(1))
	})
}
