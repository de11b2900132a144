package access_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStoreGrant(t *testing.T) {
	t.Run("should create grant with valid input", func(t *testing.T) {
		storeID := kernel.NewUUID()
		grantedBy := kernel.NewUUID()
		grantedAt := time.Now()

		grant, err := access.NewStoreGrant(storeID, access.Staff, grantedBy, grantedAt)

		require.NoError(t, err)
		require.NoError(t, grant.Validate())
		assert.True(t, storeID.IsEqual(grant.StoreID()))
		assert.Equal(t, access.Staff, grant.Level())
		assert.True(t, grantedBy.IsEqual(grant.GrantedBy()))
		assert.Equal(t, grantedAt, grant.GrantedAt())
	})

	t.Run("should reject invalid store id", func(t *testing.T) {
		_, err := access.NewStoreGrant(kernel.UUID{}, access.Staff, kernel.NewUUID(), time.Now())

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should reject Unknown level", func(t *testing.T) {
		_, err := access.NewStoreGrant(kernel.NewUUID(), access.Unknown, kernel.NewUUID(), time.Now())
		require.Error(t, err)
	})

	t.Run("should accept zero audit metadata", func(t *testing.T) {
		grant, err := access.NewStoreGrant(kernel.NewUUID(), access.Manager, kernel.UUID{}, time.Time{})

		require.NoError(t, err)
		require.NoError(t, grant.Validate())
	})
}

func TestStoreGrant_StoreLevel(t *testing.T) {
	t.Run("should normalize Master to Manager for store-scoped checks", func(t *testing.T) {
		grant, err := access.NewStoreGrant(kernel.NewUUID(), access.Master, kernel.NewUUID(), time.Now())

		require.NoError(t, err)
		assert.Equal(t, access.Master, grant.Level())
		assert.Equal(t, access.Manager, grant.StoreLevel())
	})

	t.Run("should pass other levels through unchanged", func(t *testing.T) {
		for _, level := range []access.Level{access.Manager, access.Staff, access.StoreOwner, access.Customer} {
			grant, err := access.NewStoreGrant(kernel.NewUUID(), level, kernel.NewUUID(), time.Now())

			require.NoError(t, err)
			assert.Equal(t, level, grant.StoreLevel())
		}
	})
}

func TestStoreGrant_Validate(t *testing.T) {
	t.Run("should reject zero-value grant", func(t *testing.T) {
		var grant access.StoreGrant

		err := grant.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, access.ErrStoreGrantIsNotConstructed)
	})
}
