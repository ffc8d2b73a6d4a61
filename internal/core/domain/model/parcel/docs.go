// Package parcel contains the Parcel aggregate root and its supporting value
// objects. The aggregate owns the package lifecycle: the status state machine,
// pickup/delivery timestamps, payment state, and the creation of immutable
// tracking events for every validated transition.
//
// The status state machine is fixed by the delivery domain:
//
//	pending ──> picked_up ──> in_transit ──> delivered
//	   │
//	   └──> cancelled
//
// delivered and cancelled are terminal. Every transition is recorded as exactly
// one TrackingEvent; the ledger of events is the source of truth for history
// and the current status must always equal the status of the latest event.
package parcel
