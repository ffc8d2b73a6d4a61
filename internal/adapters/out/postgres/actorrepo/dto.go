// Package actorrepo persists the actor directory: customers, drivers, courier
// admins, and super admins, as synchronized from the identity provider.
package actorrepo

import (
	"logitrack/internal/core/domain/model/actor"
	"logitrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ActorDTO represents the database structure for platform participants.
type ActorDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role      string    `gorm:"index"`
	Name      string
	Email     string
	Phone     string
	CompanyID *uuid.UUID `gorm:"type:uuid;index"`
	Active    bool
}

// TableName specifies the database table name for actor entities.
func (ActorDTO) TableName() string {
	return "actors"
}

// fromDomain converts an actor to its database representation.
func fromDomain(a *actor.Actor) ActorDTO {
	var companyID *uuid.UUID
	if id := a.CompanyID(); id != nil {
		raw := id.Bytes()
		companyID = &raw
	}

	return ActorDTO{
		ID:        a.ID().Bytes(),
		Role:      a.Role().String(),
		Name:      a.Name(),
		Email:     a.Email(),
		Phone:     a.Phone(),
		CompanyID: companyID,
		Active:    a.IsActive(),
	}
}

// toDomain converts a database DTO back to an actor via RestoreActor.
func toDomain(dto ActorDTO) (*actor.Actor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := actor.RoleFromString(dto.Role)
	if err != nil {
		return nil, err
	}

	var companyID *kernel.UUID
	if dto.CompanyID != nil {
		cID, cErr := kernel.UUIDFromBytes((*dto.CompanyID)[:])
		if cErr != nil {
			return nil, cErr
		}
		companyID = &cID
	}

	return actor.RestoreActor(id, role, dto.Name, dto.Email, dto.Phone, companyID, dto.Active)
}
