package services

import (
	"logitrack/internal/core/domain/model/parcel"
)

// Fee schedule. The stored fee keeps full float precision; rounding to two
// decimal places happens at presentation time only.
const (
	// feeBaseRate is the flat component of every delivery fee.
	feeBaseRate = 10.0

	// feeWeightRate is charged per kilogram of parcel weight.
	feeWeightRate = 2.0

	// feeExpressMultiplier is the surcharge applied to express parcels.
	feeExpressMultiplier = 1.5
)

// FeeCalculator computes delivery fees from parcel attributes. It is a pure
// function of its inputs: no side effects, no stored state.
type FeeCalculator struct{}

// NewFeeCalculator creates a FeeCalculator.
func NewFeeCalculator() FeeCalculator {
	return FeeCalculator{}
}

// ComputeFee returns (base + weightRate x weight), multiplied by the express
// surcharge for express parcels.
func (FeeCalculator) ComputeFee(weightKg float64, packageType parcel.PackageType) float64 {
	fee := feeBaseRate + feeWeightRate*weightKg
	if packageType.IsExpress() {
		fee *= feeExpressMultiplier
	}
	return fee
}
