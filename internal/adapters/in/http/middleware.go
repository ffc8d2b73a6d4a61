package http

import (
	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ActorHeader carries the authenticated actor identity, set by the identity
// gateway in front of this service. The core trusts it and resolves role and
// affiliation from the actor directory.
const ActorHeader = "X-Actor-ID"

// actorIDFromRequest extracts the caller identity from the request headers.
func actorIDFromRequest(ctx echo.Context) (kernel.UUID, error) {
	raw := ctx.Request().Header.Get(ActorHeader)
	if raw == "" {
		return kernel.UUID{}, errs.NewValueIsRequiredError(ActorHeader)
	}

	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(ActorHeader, err)
	}

	return id, nil
}
