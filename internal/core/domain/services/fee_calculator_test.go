package services_test

import (
	"testing"

	"logitrack/internal/core/domain/model/parcel"
	"logitrack/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestFeeCalculator_ComputeFee(t *testing.T) {
	calc := services.NewFeeCalculator()

	testCases := []struct {
		name        string
		weightKg    float64
		packageType parcel.PackageType
		expected    float64
	}{
		{"standard 1kg", 1, parcel.TypeStandard, 12},
		{"standard 2.5kg", 2.5, parcel.TypeStandard, 15},
		{"fragile priced as standard", 2.5, parcel.TypeFragile, 15},
		{"documents priced as standard", 0.5, parcel.TypeDocuments, 11},
		{"express 1kg", 1, parcel.TypeExpress, 18},
		{"express 2.5kg", 2.5, parcel.TypeExpress, 22.5},
		{"express surcharge on full fee", 10, parcel.TypeExpress, 45},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.expected, calc.ComputeFee(tc.weightKg, tc.packageType), 1e-9)
		})
	}
}

func TestFeeCalculator_KeepsFullPrecision(t *testing.T) {
	calc := services.NewFeeCalculator()

	// (10 + 2*1.333) * 1.5 = 18.999; no rounding in the domain.
	fee := calc.ComputeFee(1.333, parcel.TypeExpress)
	assert.InDelta(t, 18.999, fee, 1e-9)
}
