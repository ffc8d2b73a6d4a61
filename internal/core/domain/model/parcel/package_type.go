package parcel

import (
	"fmt"

	"logitrack/internal/pkg/errs"
)

// PackageType classifies the contents of a parcel. Express parcels carry a fee
// surcharge and are prioritized by the route sequencer.
type PackageType int

const (
	TypeUnknown PackageType = iota
	TypeStandard
	TypeExpress
	TypeFragile
	TypeDocuments
)

func getPackageTypeStrings() map[PackageType]string {
	return map[PackageType]string{
		TypeStandard:  "standard",
		TypeExpress:   "express",
		TypeFragile:   "fragile",
		TypeDocuments: "documents",
	}
}

// PackageTypeFromString parses the persisted/API representation of a package type.
func PackageTypeFromString(s string) (PackageType, error) {
	for t, str := range getPackageTypeStrings() {
		if str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"packageType", fmt.Errorf("%q is not a recognized package type", s))
}

// Validate checks that the PackageType is one of the recognized values.
func (t PackageType) Validate() error {
	if _, ok := getPackageTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"packageType", fmt.Errorf("%d is not a valid package type", int(t)))
	}
	return nil
}

// String returns the snake_case representation used in storage and APIs.
func (t PackageType) String() string {
	if str, ok := getPackageTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// IsExpress reports whether the parcel qualifies for express handling.
func (t PackageType) IsExpress() bool {
	return t == TypeExpress
}
