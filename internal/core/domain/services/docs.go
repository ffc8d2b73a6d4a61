// Package services contains stateless domain services that operate across
// aggregates: the access policy gating every read and mutation, the delivery
// fee calculator, and the route sequencer ordering a driver's open parcels.
package services
