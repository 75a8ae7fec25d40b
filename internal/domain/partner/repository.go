package partner

import (
	"context"

	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	// FindByIDForTenant finds a supplier by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Supplier, error)

	// FindByCode finds a supplier by its code within a tenant
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Supplier, error)

	// FindAllForTenant finds all suppliers for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Supplier, error)

	// ExistsByCode reports whether a supplier with the code exists in the tenant
	ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error)

	// Save creates or updates a supplier
	Save(ctx context.Context, supplier *Supplier) error

	// DeleteForTenant deletes a supplier within a tenant
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error

	// CountForTenant counts suppliers matching the filter
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}

// CompanyRepository defines the interface for freight company persistence
type CompanyRepository interface {
	// FindByIDForTenant finds a company by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Company, error)

	// FindByCode finds a company by its code within a tenant
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Company, error)

	// FindAllForTenant finds all companies for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Company, error)

	// ExistsByCode reports whether a company with the code exists in the tenant
	ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error)

	// Save creates or updates a company
	Save(ctx context.Context, company *Company) error

	// DeleteForTenant deletes a company within a tenant
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error

	// CountForTenant counts companies matching the filter
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}

// VehicleRepository defines the interface for vehicle persistence
type VehicleRepository interface {
	// FindByIDForTenant finds a vehicle by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Vehicle, error)

	// FindByRegistration finds a vehicle by registration number within a tenant
	FindByRegistration(ctx context.Context, tenantID uuid.UUID, registrationNumber string) (*Vehicle, error)

	// FindAllForTenant finds all vehicles for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Vehicle, error)

	// ExistsByRegistration reports whether a vehicle with the registration exists in the tenant
	ExistsByRegistration(ctx context.Context, tenantID uuid.UUID, registrationNumber string) (bool, error)

	// Save creates or updates a vehicle
	Save(ctx context.Context, vehicle *Vehicle) error

	// DeleteForTenant deletes a vehicle within a tenant
	DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error

	// CountForTenant counts vehicles matching the filter
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}
