package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/access"
	"storefront/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrantStoreAccessCommand(t *testing.T) {
	t.Run("should create command with valid input", func(t *testing.T) {
		grantorID := kernel.NewUUID()
		granteeID := kernel.NewUUID()
		storeID := kernel.NewUUID()

		cmd, err := commands.NewGrantStoreAccessCommand(grantorID, granteeID, storeID, access.Staff)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, grantorID.IsEqual(cmd.GrantorID()))
		assert.True(t, granteeID.IsEqual(cmd.GranteeID()))
		assert.True(t, storeID.IsEqual(cmd.StoreID()))
		assert.Equal(t, access.Staff, cmd.Level())
	})

	t.Run("should reject invalid grantor id", func(t *testing.T) {
		_, err := commands.NewGrantStoreAccessCommand(
			kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), access.Staff)

		require.Error(t, err)
	})

	t.Run("should reject invalid grantee id", func(t *testing.T) {
		_, err := commands.NewGrantStoreAccessCommand(
			kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID(), access.Staff)

		require.Error(t, err)
	})

	t.Run("should reject invalid store id", func(t *testing.T) {
		_, err := commands.NewGrantStoreAccessCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{}, access.Staff)

		require.Error(t, err)
	})

	t.Run("should reject unknown level", func(t *testing.T) {
		_, err := commands.NewGrantStoreAccessCommand(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), access.Unknown)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a valid permission level")
	})
}

func TestGrantStoreAccessCommand_Validate(t *testing.T) {
	t.Run("should reject directly instantiated command", func(t *testing.T) {
		cmd := commands.GrantStoreAccessCommand{}

		err := cmd.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrGrantStoreAccessCommandIsNotConstructed)
	})
}
