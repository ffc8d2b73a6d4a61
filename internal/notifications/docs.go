// Package notifications implements the change notification hub. The hub
// observes committed parcel changes, computes the relevance set (sender,
// assigned driver, the owning company's active admins, and all super admins),
// persists a notification into each relevant actor's durable inbox, and pushes
// it to actors holding a live subscription.
//
// Delivery is at-least-once and best-effort: a disconnected actor finds queued
// notifications in their inbox on next connect. Notifications for a single
// parcel reach a given actor in ledger-append order; there is no ordering
// guarantee across parcels.
package notifications
