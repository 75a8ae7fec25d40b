package trip

import (
	"context"

	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TripRepository defines the interface for trip persistence
type TripRepository interface {
	// FindByIDForTenant finds a non-deleted trip by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Trip, error)

	// FindByTripNumber finds a non-deleted trip by its number within a tenant
	FindByTripNumber(ctx context.Context, tenantID uuid.UUID, tripNumber string) (*Trip, error)

	// FindAllForTenant finds all non-deleted trips for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Trip, error)

	// ExistsByTripNumber reports whether a non-deleted trip with the number exists
	ExistsByTripNumber(ctx context.Context, tenantID uuid.UUID, tripNumber string) (bool, error)

	// Save creates or updates a trip
	Save(ctx context.Context, trip *Trip) error

	// SaveWithLock updates a trip with an optimistic-concurrency version check
	SaveWithLock(ctx context.Context, trip *Trip) error

	// CountForTenant counts non-deleted trips matching the filter
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}

// AdvancePaymentRepository defines the interface for advance payment persistence
type AdvancePaymentRepository interface {
	// FindByIDForTenant finds a non-deleted advance by ID within a tenant
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*AdvancePayment, error)

	// FindAllForTenant finds all non-deleted advances for a tenant
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]AdvancePayment, error)

	// FindByTrip finds all non-deleted advances linked to a trip
	FindByTrip(ctx context.Context, tenantID, tripID uuid.UUID) ([]AdvancePayment, error)

	// Save creates or updates an advance payment
	Save(ctx context.Context, advance *AdvancePayment) error

	// CountForTenant counts non-deleted advances matching the filter
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}
