package ports

import (
	"context"

	"logitrack/internal/core/domain/model/company"
	"logitrack/internal/core/domain/model/kernel"
)

// CompanyRepository defines the persistence contract for courier companies.
type CompanyRepository interface {
	// Get retrieves a company by identity.
	Get(ctx context.Context, id kernel.UUID) (*company.Company, error)
}
