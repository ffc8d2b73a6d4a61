package parcel_test

import (
	"errors"
	"testing"

	"logitrack/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_TransitionTable(t *testing.T) {
	allStatuses := []parcel.Status{
		parcel.StatusPending,
		parcel.StatusPickedUp,
		parcel.StatusInTransit,
		parcel.StatusDelivered,
		parcel.StatusCancelled,
	}

	allowed := map[parcel.Status][]parcel.Status{
		parcel.StatusPending:   {parcel.StatusPickedUp, parcel.StatusCancelled},
		parcel.StatusPickedUp:  {parcel.StatusInTransit},
		parcel.StatusInTransit: {parcel.StatusDelivered},
		parcel.StatusDelivered: {},
		parcel.StatusCancelled: {},
	}

	for from, nexts := range allowed {
		for _, to := range allStatuses {
			shouldAllow := false
			for _, n := range nexts {
				if n == to {
					shouldAllow = true
				}
			}

			got, err := from.TransitionTo(to)
			if shouldAllow {
				require.NoError(t, err, "%s -> %s should be allowed", from, to)
				assert.Equal(t, to, got)
			} else {
				require.Error(t, err, "%s -> %s should be rejected", from, to)
				assert.ErrorIs(t, err, parcel.ErrInvalidTransition)
			}
		}
	}
}

func TestStatus_TransitionTo_ReportsPair(t *testing.T) {
	_, err := parcel.StatusDelivered.TransitionTo(parcel.StatusPending)

	require.Error(t, err)
	var invalidErr *parcel.InvalidTransitionError
	require.True(t, errors.As(err, &invalidErr))
	assert.Equal(t, parcel.StatusDelivered, invalidErr.From)
	assert.Equal(t, parcel.StatusPending, invalidErr.To)
	assert.Contains(t, err.Error(), "delivered -> pending")
}

func TestStatus_TransitionTo_RejectsUnknownTarget(t *testing.T) {
	_, err := parcel.StatusPending.TransitionTo(parcel.StatusUnknown)
	require.Error(t, err)
	assert.NotErrorIs(t, err, parcel.ErrInvalidTransition)
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, parcel.StatusPending.IsTerminal())
	assert.False(t, parcel.StatusPickedUp.IsTerminal())
	assert.False(t, parcel.StatusInTransit.IsTerminal())
	assert.True(t, parcel.StatusDelivered.IsTerminal())
	assert.True(t, parcel.StatusCancelled.IsTerminal())
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse all persisted representations", func(t *testing.T) {
		cases := map[string]parcel.Status{
			"pending":    parcel.StatusPending,
			"picked_up":  parcel.StatusPickedUp,
			"in_transit": parcel.StatusInTransit,
			"delivered":  parcel.StatusDelivered,
			"cancelled":  parcel.StatusCancelled,
		}
		for s, want := range cases {
			got, err := parcel.StatusFromString(s)
			require.NoError(t, err)
			assert.Equal(t, want, got)
			assert.Equal(t, s, got.String())
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		for _, s := range []string{"", "unknown", "shipped", "PENDING"} {
			_, err := parcel.StatusFromString(s)
			require.Error(t, err, "%q should not parse", s)
		}
	})
}

func TestStatus_Display(t *testing.T) {
	assert.Equal(t, "picked up", parcel.StatusPickedUp.Display())
	assert.Equal(t, "in transit", parcel.StatusInTransit.Display())
	assert.Equal(t, "pending", parcel.StatusPending.Display())
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, parcel.StatusDelivered.Validate())
	require.Error(t, parcel.StatusUnknown.Validate())
	require.Error(t, parcel.Status(42).Validate())
}
