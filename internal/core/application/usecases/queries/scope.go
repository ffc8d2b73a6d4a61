// Package queries contains read operations over the parcel store. Handlers
// read through raw SQL on the GORM connection, bypassing the aggregate layer,
// and return flat response models. Row visibility is scoped per actor role with
// the same rules services.AccessPolicy enforces on mutations.
package queries

import (
	"context"

	"logitrack/internal/core/domain/model/actor"
	"logitrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// resolveParcelScope translates the actor's role and affiliation into a SQL
// predicate over the parcels table. visible is false when the actor is unknown
// or the role cannot be resolved, in which case the caller returns an empty
// result instead of an error.
func resolveParcelScope(
	ctx context.Context, db *gorm.DB, actorID kernel.UUID,
) (condition string, args []any, visible bool, err error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			role,
			company_id
		FROM actors
		WHERE id = ?
	`, actorID.Bytes()).Rows()
	if err != nil {
		return "", nil, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return "", nil, false, rows.Err()
	}

	var roleStr string
	var companyID uuid.NullUUID
	if err = rows.Scan(&roleStr, &companyID); err != nil {
		return "", nil, false, err
	}

	role, roleErr := actor.RoleFromString(roleStr)
	if roleErr != nil {
		return "", nil, false, nil
	}

	switch role {
	case actor.RoleSuperAdmin:
		return "TRUE", nil, true, nil
	case actor.RoleCourierAdmin:
		if !companyID.Valid {
			return "", nil, false, nil
		}
		return "company_id = ?", []any{companyID.UUID}, true, nil
	case actor.RoleDriver:
		return "driver_id = ?", []any{actorID.Bytes()}, true, nil
	case actor.RoleCustomer:
		return "sender_id = ?", []any{actorID.Bytes()}, true, nil
	}

	return "", nil, false, nil
}
