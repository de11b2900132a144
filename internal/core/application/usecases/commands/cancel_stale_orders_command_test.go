package commands_test

import (
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCancelStaleOrdersCommand(t *testing.T) {
	t.Run("should create command with valid cutoff", func(t *testing.T) {
		cutoff := time.Now().Add(-24 * time.Hour)

		cmd, err := commands.NewCancelStaleOrdersCommand(cutoff)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, cutoff, cmd.Cutoff())
	})

	t.Run("should reject zero cutoff", func(t *testing.T) {
		_, err := commands.NewCancelStaleOrdersCommand(time.Time{})

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrCutoffIsRequired)
	})
}

func TestCancelStaleOrdersCommand_Validate(t *testing.T) {
	t.Run("should reject directly instantiated command", func(t *testing.T) {
		cmd := commands.CancelStaleOrdersCommand{}

		err := cmd.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrCancelStaleOrdersCommandIsNotConstructed)
	})
}
