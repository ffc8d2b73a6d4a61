// Package kernel contains shared value objects used across all domain aggregates.
// It currently provides the UUID identity type that parcels, actors, and courier
// companies use for their identifiers.
package kernel
