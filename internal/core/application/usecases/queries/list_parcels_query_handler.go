package queries

import (
	"context"
	"time"

	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListParcelsQueryHandler retrieves the parcels visible to an actor directly
// from the database. An actor whose role cannot be resolved sees an empty list
// rather than an error.
type ListParcelsQueryHandler struct {
	db *gorm.DB
}

// NewListParcelsQueryHandler creates a handler for scoped parcel listings.
func NewListParcelsQueryHandler(db *gorm.DB) ListParcelsQueryHandler {
	return ListParcelsQueryHandler{db: db}
}

// Handle executes the listing. Results are ordered newest first.
func (h ListParcelsQueryHandler) Handle(
	ctx context.Context,
	query ListParcelsQuery,
) ([]ListParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]ListParcelsQueryResponse, 0)

	scope, args, visible, err := resolveParcelScope(ctx, h.db, query.ActorID())
	if err != nil {
		return nil, err
	}
	if !visible {
		return parcels, nil
	}

	sql := `
		SELECT
			id,
			tracking_code,
			status,
			package_type,
			recipient_name,
			recipient_address,
			pickup_address,
			weight_kg,
			delivery_fee,
			created_at
		FROM parcels
		WHERE ` + scope
	if query.StatusFilter() != nil {
		sql += ` AND status = ?`
		args = append(args, query.StatusFilter().String())
	}
	sql += `
		ORDER BY created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row ListParcelsQueryResponse
		var id uuid.UUID
		var statusStr, packageTypeStr string
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&row.TrackingCode,
			&statusStr,
			&packageTypeStr,
			&row.RecipientName,
			&row.RecipientAddress,
			&row.PickupAddress,
			&row.WeightKg,
			&row.DeliveryFee,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = parcelID

		status, statusErr := parcel.StatusFromString(statusStr)
		if statusErr != nil {
			return nil, statusErr
		}
		row.Status = status

		packageType, typeErr := parcel.PackageTypeFromString(packageTypeStr)
		if typeErr != nil {
			return nil, typeErr
		}
		row.PackageType = packageType

		row.CreatedAt = createdAt
		parcels = append(parcels, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
