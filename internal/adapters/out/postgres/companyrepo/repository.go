package companyrepo

import (
	"context"
	"errors"

	"logitrack/internal/core/domain/model/company"
	"logitrack/internal/core/domain/model/kernel"
	"logitrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCompanyRepository implements ports.CompanyRepository using GORM.
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GORM company repository.
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// Get retrieves a company by identity.
func (r *GormCompanyRepository) Get(ctx context.Context, id kernel.UUID) (*company.Company, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CompanyDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("company", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
