package order_test

import (
	"fmt"
	"testing"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Pending))
		assert.Equal(t, 2, int(order.Confirmed))
		assert.Equal(t, 3, int(order.Processing))
		assert.Equal(t, 4, int(order.Shipped))
		assert.Equal(t, 5, int(order.Delivered))
		assert.Equal(t, 6, int(order.Cancelled))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Pending,
			order.Confirmed,
			order.Processing,
			order.Shipped,
			order.Delivered,
			order.Cancelled,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Status(-1), order.Status(7), order.Status(100)} {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Pending, "Pending"},
			{order.Confirmed, "Confirmed"},
			{order.Processing, "Processing"},
			{order.Shipped, "Shipped"},
			{order.Delivered, "Delivered"},
			{order.Cancelled, "Cancelled"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return Unknown for invalid statuses", func(t *testing.T) {
		for _, status := range []order.Status{order.Unknown, order.Status(-1), order.Status(7)} {
			assert.Equal(t, "Unknown", status.String())
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse every valid status name", func(t *testing.T) {
		for _, expected := range []order.Status{
			order.Pending, order.Confirmed, order.Processing,
			order.Shipped, order.Delivered, order.Cancelled,
		} {
			status, err := order.StatusFromString(expected.String())

			require.NoError(t, err)
			assert.Equal(t, expected, status)
		}
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "Unknown", "pending", "Teleported"} {
			status, err := order.StatusFromString(name)

			require.Error(t, err, "%q should be rejected", name)
			assert.Equal(t, order.Unknown, status)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("should mark Delivered and Cancelled as terminal", func(t *testing.T) {
		assert.True(t, order.Delivered.IsTerminal())
		assert.True(t, order.Cancelled.IsTerminal())
	})

	t.Run("should mark workflow statuses as non-terminal", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Confirmed, order.Processing, order.Shipped} {
			assert.False(t, status.IsTerminal(), "%s should not be terminal", status)
		}
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("should follow the transition table", func(t *testing.T) {
		testCases := []struct {
			from    order.Status
			allowed []order.Status
		}{
			{order.Pending, []order.Status{order.Confirmed, order.Cancelled}},
			{order.Confirmed, []order.Status{order.Processing, order.Cancelled}},
			{order.Processing, []order.Status{order.Shipped, order.Cancelled}},
			{order.Shipped, []order.Status{order.Delivered, order.Cancelled}},
			{order.Delivered, nil},
			{order.Cancelled, nil},
		}

		allStatuses := []order.Status{
			order.Pending, order.Confirmed, order.Processing,
			order.Shipped, order.Delivered, order.Cancelled,
		}

		for _, tc := range testCases {
			for _, target := range allStatuses {
				expected := false
				for _, allowed := range tc.allowed {
					if allowed == target {
						expected = true
					}
				}
				assert.Equal(t, expected, tc.from.CanTransitionTo(target),
					"%s -> %s", tc.from, target)
			}
		}
	})

	t.Run("should reject transitions from invalid statuses", func(t *testing.T) {
		assert.False(t, order.Unknown.CanTransitionTo(order.Confirmed))
		assert.False(t, order.Status(99).CanTransitionTo(order.Cancelled))
	})

	t.Run("should reject transitions to invalid statuses", func(t *testing.T) {
		assert.False(t, order.Pending.CanTransitionTo(order.Unknown))
		assert.False(t, order.Pending.CanTransitionTo(order.Status(99)))
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should move along the happy path", func(t *testing.T) {
		status := order.Pending

		for _, next := range []order.Status{order.Confirmed, order.Processing, order.Shipped, order.Delivered} {
			newStatus, err := status.TransitionTo(next)
			require.NoError(t, err)
			assert.Equal(t, next, newStatus)
			status = newStatus
		}
	})

	t.Run("should allow cancellation from every non-terminal status", func(t *testing.T) {
		for _, status := range []order.Status{order.Pending, order.Confirmed, order.Processing, order.Shipped} {
			newStatus, err := status.TransitionTo(order.Cancelled)
			require.NoError(t, err)
			assert.Equal(t, order.Cancelled, newStatus)
		}
	})

	t.Run("should reject skipping workflow steps", func(t *testing.T) {
		_, err := order.Pending.TransitionTo(order.Shipped)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "Pending cannot transition to Shipped")
	})

	t.Run("should reject moving backwards", func(t *testing.T) {
		_, err := order.Processing.TransitionTo(order.Pending)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Processing cannot transition to Pending")
	})

	t.Run("should reject leaving terminal statuses", func(t *testing.T) {
		allTargets := []order.Status{
			order.Pending, order.Confirmed, order.Processing,
			order.Shipped, order.Delivered, order.Cancelled,
		}

		for _, terminal := range []order.Status{order.Delivered, order.Cancelled} {
			for _, target := range allTargets {
				newStatus, err := terminal.TransitionTo(target)

				require.Error(t, err, "%s -> %s should be rejected", terminal, target)
				assert.Equal(t, order.Status(0), newStatus)
			}
		}
	})

	t.Run("should not modify the original status value", func(t *testing.T) {
		original := order.Pending

		newStatus, err := original.TransitionTo(order.Confirmed)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, original)
		assert.Equal(t, order.Confirmed, newStatus)
	})
}
