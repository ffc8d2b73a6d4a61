// Package companyrepo persists courier companies.
package companyrepo

import (
	"logitrack/internal/core/domain/model/company"
	"logitrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CompanyDTO represents the database structure for courier companies.
type CompanyDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Email  string
	Phone  string
	Active bool
}

// TableName specifies the database table name for company entities.
func (CompanyDTO) TableName() string {
	return "companies"
}

// fromDomain converts a company to its database representation.
func fromDomain(c *company.Company) CompanyDTO {
	return CompanyDTO{
		ID:     c.ID().Bytes(),
		Name:   c.Name(),
		Email:  c.Email(),
		Phone:  c.Phone(),
		Active: c.IsActive(),
	}
}

// toDomain converts a database DTO back to a company via RestoreCompany.
func toDomain(dto CompanyDTO) (*company.Company, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return company.RestoreCompany(id, dto.Name, dto.Email, dto.Phone, dto.Active)
}
