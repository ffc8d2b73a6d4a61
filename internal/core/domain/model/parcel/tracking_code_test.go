package parcel_test

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"logitrack/internal/core/domain/model/parcel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTrackingCode(t *testing.T) {
	now := time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

	t.Run("should carry the LT prefix and timestamp component", func(t *testing.T) {
		code := parcel.GenerateTrackingCode(now)

		require.NoError(t, code.Validate())
		assert.True(t, strings.HasPrefix(code.Value(), "LT"))
		assert.True(t, strings.HasPrefix(code.Value(),
			"LT"+strconv.FormatInt(now.UnixMilli(), 10)))
	})

	t.Run("should append four characters from the code alphabet", func(t *testing.T) {
		code := parcel.GenerateTrackingCode(now)

		suffix := strings.TrimPrefix(code.Value(),
			"LT"+strconv.FormatInt(now.UnixMilli(), 10))
		assert.Len(t, suffix, 4)
		for _, c := range suffix {
			assert.Contains(t, "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ", string(c))
		}
	})

	t.Run("should be upper case", func(t *testing.T) {
		code := parcel.GenerateTrackingCode(now)
		assert.Equal(t, strings.ToUpper(code.Value()), code.Value())
	})
}

func TestTrackingCodeFromString(t *testing.T) {
	t.Run("should normalize case and whitespace", func(t *testing.T) {
		code, err := parcel.TrackingCodeFromString("  lt1741953600000ab3z ")

		require.NoError(t, err)
		assert.Equal(t, "LT1741953600000AB3Z", code.Value())
	})

	t.Run("should round-trip a generated code", func(t *testing.T) {
		generated := parcel.GenerateTrackingCode(time.Now())

		parsed, err := parcel.TrackingCodeFromString(generated.Value())

		require.NoError(t, err)
		assert.True(t, parsed.IsEqual(generated))
	})

	t.Run("should reject empty input", func(t *testing.T) {
		_, err := parcel.TrackingCodeFromString("   ")
		require.Error(t, err)
	})

	t.Run("should reject codes without the LT prefix", func(t *testing.T) {
		_, err := parcel.TrackingCodeFromString("XX1741953600000AB3Z")
		require.Error(t, err)
	})

	t.Run("should reject codes that are too short", func(t *testing.T) {
		_, err := parcel.TrackingCodeFromString("LT12")
		require.Error(t, err)
	})
}

func TestTrackingCode_Validate(t *testing.T) {
	var zero parcel.TrackingCode
	require.Error(t, zero.Validate())
}
