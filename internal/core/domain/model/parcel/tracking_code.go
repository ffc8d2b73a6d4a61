package parcel

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"logitrack/internal/pkg/errs"
)

// trackingCodePrefix identifies LogiTrack codes to humans and support tooling.
const trackingCodePrefix = "LT"

// trackingCodeSuffixLen is the number of random characters appended after the
// timestamp component.
const trackingCodeSuffixLen = 4

const trackingCodeAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ErrTrackingCodeIsNotConstructed indicates a zero-value TrackingCode.
var ErrTrackingCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking code must be created via GenerateTrackingCode or TrackingCodeFromString")

// TrackingCode is the human-facing unique identifier of a parcel, distinct from
// its internal UUID. The format is "LT" + millisecond timestamp + 4 random
// characters, always upper case. The timestamp component makes collisions rare;
// callers still check uniqueness on insert and regenerate on collision.
type TrackingCode struct {
	value string
}

// GenerateTrackingCode produces a new code for a parcel created at now.
func GenerateTrackingCode(now time.Time) TrackingCode {
	var suffix strings.Builder
	for i := 0; i < trackingCodeSuffixLen; i++ {
		suffix.WriteByte(trackingCodeAlphabet[rand.Intn(len(trackingCodeAlphabet))])
	}
	return TrackingCode{
		value: trackingCodePrefix + strconv.FormatInt(now.UnixMilli(), 10) + suffix.String(),
	}
}

// TrackingCodeFromString parses and case-normalizes a tracking code supplied by
// a caller (tracking lookups, persistence restore).
func TrackingCodeFromString(s string) (TrackingCode, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	if normalized == "" {
		return TrackingCode{}, errs.NewValueIsRequiredError("trackingCode")
	}
	if !strings.HasPrefix(normalized, trackingCodePrefix) ||
		len(normalized) <= len(trackingCodePrefix)+trackingCodeSuffixLen {
		return TrackingCode{}, errs.NewValueIsInvalidErrorWithCause(
			"trackingCode", fmt.Errorf("%q does not match the LT code format", s))
	}
	return TrackingCode{value: normalized}, nil
}

// Value returns the code string.
func (c TrackingCode) Value() string {
	return c.value
}

// String implements fmt.Stringer.
func (c TrackingCode) String() string {
	return c.value
}

// IsEqual reports whether two codes are identical.
func (c TrackingCode) IsEqual(other TrackingCode) bool {
	return c.value == other.value
}

// Validate returns ErrTrackingCodeIsNotConstructed for the zero value.
func (c TrackingCode) Validate() error {
	if c.value == "" {
		return ErrTrackingCodeIsNotConstructed
	}
	return nil
}
