package ports

import (
	"context"

	"logitrack/internal/core/domain/model/actor"
	"logitrack/internal/core/domain/model/kernel"
)

// ActorRepository defines the persistence contract for platform participants.
// The core trusts actor identities supplied by the external identity provider
// and resolves them to roles and affiliations through this port.
type ActorRepository interface {
	// Get retrieves an actor by identity.
	Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error)

	// ListAdminsByCompany retrieves the active courier admins of a company,
	// for notification fan-out.
	ListAdminsByCompany(ctx context.Context, companyID kernel.UUID) ([]*actor.Actor, error)

	// ListSuperAdmins retrieves all active super admins.
	ListSuperAdmins(ctx context.Context) ([]*actor.Actor, error)
}
