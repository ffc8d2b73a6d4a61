package actorrepo

import (
	"context"
	"errors"

	"logitrack/internal/core/domain/model/actor"
	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormActorRepository implements ports.ActorRepository using GORM.
type GormActorRepository struct {
	db *gorm.DB
}

// NewGormActorRepository creates a new GORM actor repository.
func NewGormActorRepository(db *gorm.DB) *GormActorRepository {
	return &GormActorRepository{db: db}
}

// Get retrieves an actor by identity.
func (r *GormActorRepository) Get(ctx context.Context, id kernel.UUID) (*actor.Actor, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ActorDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("actor", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ListAdminsByCompany retrieves the active courier admins of a company.
func (r *GormActorRepository) ListAdminsByCompany(
	ctx context.Context, companyID kernel.UUID,
) ([]*actor.Actor, error) {
	if err := companyID.Validate(); err != nil {
		return nil, err
	}

	return r.list(ctx, "role = ? AND company_id = ? AND active",
		actor.RoleCourierAdmin.String(), companyID.Bytes())
}

// ListSuperAdmins retrieves all active super admins.
func (r *GormActorRepository) ListSuperAdmins(ctx context.Context) ([]*actor.Actor, error) {
	return r.list(ctx, "role = ? AND active", actor.RoleSuperAdmin.String())
}

func (r *GormActorRepository) list(
	ctx context.Context, query string, args ...any,
) ([]*actor.Actor, error) {
	var dtos []ActorDTO
	if err := r.db.WithContext(ctx).Where(query, args...).Find(&dtos).Error; err != nil {
		return nil, err
	}

	actors := make([]*actor.Actor, 0, len(dtos))
	for _, dto := range dtos {
		a, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		actors = append(actors, a)
	}

	return actors, nil
}
