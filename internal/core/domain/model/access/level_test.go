package access_test

import (
	"fmt"
	"testing"

	"storefront/internal/core/domain/model/access"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(access.Unknown))
		assert.Equal(t, 1, int(access.Master))
		assert.Equal(t, 2, int(access.Manager))
		assert.Equal(t, 3, int(access.Staff))
		assert.Equal(t, 4, int(access.StoreOwner))
		assert.Equal(t, 5, int(access.Customer))
	})
}

func TestLevel_Validate(t *testing.T) {
	t.Run("should validate valid levels", func(t *testing.T) {
		validLevels := []access.Level{
			access.Master,
			access.Manager,
			access.Staff,
			access.StoreOwner,
			access.Customer,
		}

		for _, level := range validLevels {
			t.Run(fmt.Sprintf("should validate %s level", level.String()), func(t *testing.T) {
				require.NoError(t, level.Validate())
			})
		}
	})

	t.Run("should reject Unknown level", func(t *testing.T) {
		err := access.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "level is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid permission level")
	})

	t.Run("should reject invalid level values", func(t *testing.T) {
		for _, level := range []access.Level{access.Level(-1), access.Level(6), access.Level(100)} {
			t.Run(fmt.Sprintf("should reject level value %d", int(level)), func(t *testing.T) {
				require.Error(t, level.Validate())
			})
		}
	})
}

func TestLevelFromString(t *testing.T) {
	t.Run("should parse every valid level name", func(t *testing.T) {
		for _, expected := range []access.Level{
			access.Master, access.Manager, access.Staff,
			access.StoreOwner, access.Customer,
		} {
			level, err := access.LevelFromString(expected.String())

			require.NoError(t, err)
			assert.Equal(t, expected, level)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "manager", "Emperor"} {
			level, err := access.LevelFromString(name)

			require.Error(t, err, "%q should be rejected", name)
			assert.Equal(t, access.Unknown, level)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestLevel_String(t *testing.T) {
	t.Run("should return correct string for valid levels", func(t *testing.T) {
		testCases := []struct {
			level    access.Level
			expected string
		}{
			{access.Master, "Master"},
			{access.Manager, "Manager"},
			{access.Staff, "Staff"},
			{access.StoreOwner, "StoreOwner"},
			{access.Customer, "Customer"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.level.String())
		}
	})

	t.Run("should return Unknown for invalid levels", func(t *testing.T) {
		for _, level := range []access.Level{access.Unknown, access.Level(-1), access.Level(6)} {
			assert.Equal(t, "Unknown", level.String())
		}
	})
}

func TestLevel_Rank(t *testing.T) {
	t.Run("should rank levels from highest to lowest authority", func(t *testing.T) {
		assert.Equal(t, 0, access.Master.Rank())
		assert.Equal(t, 1, access.Manager.Rank())
		assert.Equal(t, 2, access.Staff.Rank())
		assert.Equal(t, 3, access.StoreOwner.Rank())
		assert.Equal(t, 4, access.Customer.Rank())
	})

	t.Run("should rank invalid levels as Customer", func(t *testing.T) {
		for _, level := range []access.Level{access.Unknown, access.Level(-1), access.Level(42)} {
			assert.Equal(t, access.Customer.Rank(), level.Rank())
		}
	})
}

func TestLevel_AtLeast(t *testing.T) {
	t.Run("should accept higher or equal authority", func(t *testing.T) {
		assert.True(t, access.Master.AtLeast(access.Customer))
		assert.True(t, access.Manager.AtLeast(access.Staff))
		assert.True(t, access.Staff.AtLeast(access.Staff))
	})

	t.Run("should reject lower authority", func(t *testing.T) {
		assert.False(t, access.Customer.AtLeast(access.Master))
		assert.False(t, access.Staff.AtLeast(access.Manager))
		assert.False(t, access.StoreOwner.AtLeast(access.Staff))
	})

	t.Run("should treat Unknown as Customer on both sides", func(t *testing.T) {
		assert.True(t, access.Unknown.AtLeast(access.Customer))
		assert.False(t, access.Unknown.AtLeast(access.StoreOwner))
		assert.True(t, access.Customer.AtLeast(access.Unknown))
	})
}
