package services_test

import (
	"testing"
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func routeParcel(t *testing.T, packageType parcel.PackageType, createdAt time.Time) *parcel.Parcel {
	t.Helper()

	recipient, err := parcel.NewRecipient("Jane Doe", "+15550100", "1 Delivery Ln")
	require.NoError(t, err)

	p, err := parcel.NewParcel(
		kernel.NewUUID(), parcel.GenerateTrackingCode(createdAt), kernel.NewUUID(), recipient,
		"9 Warehouse Rd", packageType, 1, 100, 12, createdAt)
	require.NoError(t, err)
	return p
}

func TestRouteSequencer_Sequence(t *testing.T) {
	sequencer := services.NewRouteSequencer()
	base := time.Date(2025, 3, 14, 8, 0, 0, 0, time.UTC)

	t.Run("express parcels come first, oldest first within each tier", func(t *testing.T) {
		oldStandard := routeParcel(t, parcel.TypeStandard, base)
		newStandard := routeParcel(t, parcel.TypeFragile, base.Add(2*time.Hour))
		oldExpress := routeParcel(t, parcel.TypeExpress, base.Add(time.Hour))
		newExpress := routeParcel(t, parcel.TypeExpress, base.Add(3*time.Hour))

		sequenced := sequencer.Sequence([]*parcel.Parcel{
			newStandard, newExpress, oldStandard, oldExpress,
		})

		require.Len(t, sequenced, 4)
		assert.True(t, sequenced[0].IsEqual(oldExpress))
		assert.True(t, sequenced[1].IsEqual(newExpress))
		assert.True(t, sequenced[2].IsEqual(oldStandard))
		assert.True(t, sequenced[3].IsEqual(newStandard))
	})

	t.Run("does not modify the input slice", func(t *testing.T) {
		first := routeParcel(t, parcel.TypeStandard, base)
		second := routeParcel(t, parcel.TypeExpress, base.Add(time.Hour))
		input := []*parcel.Parcel{first, second}

		_ = sequencer.Sequence(input)

		assert.True(t, input[0].IsEqual(first))
		assert.True(t, input[1].IsEqual(second))
	})

	t.Run("preserves input order for equal keys", func(t *testing.T) {
		a := routeParcel(t, parcel.TypeStandard, base)
		b := routeParcel(t, parcel.TypeStandard, base)

		sequenced := sequencer.Sequence([]*parcel.Parcel{a, b})

		assert.True(t, sequenced[0].IsEqual(a))
		assert.True(t, sequenced[1].IsEqual(b))
	})

	t.Run("handles empty input", func(t *testing.T) {
		assert.Empty(t, sequencer.Sequence(nil))
	})
}
