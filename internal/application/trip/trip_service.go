package trip

import (
	"context"
	"errors"

	"github.com/fleetledger/backend/internal/domain/partner"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/fleetledger/backend/internal/domain/trip"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TripService handles trip business operations
type TripService struct {
	tripRepo       trip.TripRepository
	supplierRepo   partner.SupplierRepository
	companyRepo    partner.CompanyRepository
	vehicleRepo    partner.VehicleRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewTripService creates a new TripService
func NewTripService(tripRepo trip.TripRepository, supplierRepo partner.SupplierRepository,
	companyRepo partner.CompanyRepository, vehicleRepo partner.VehicleRepository,
	logger *zap.Logger) *TripService {
	return &TripService{
		tripRepo:     tripRepo,
		supplierRepo: supplierRepo,
		companyRepo:  companyRepo,
		vehicleRepo:  vehicleRepo,
		logger:       logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *TripService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a new trip. All three party references must resolve within
// the caller's tenant; a reference that resolves in another tenant or not at
// all is rejected as a foreign reference without revealing whether it exists.
func (s *TripService) Create(ctx context.Context, tenantID uuid.UUID, req CreateTripRequest) (*TripResponse, error) {
	if err := s.validateReferences(ctx, tenantID, req.SupplierID, req.CompanyID, req.VehicleID); err != nil {
		return nil, err
	}

	exists, err := s.tripRepo.ExistsByTripNumber(ctx, tenantID, req.TripNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Trip number already exists")
	}

	t, err := trip.NewTrip(tenantID, req.TripNumber, req.SupplierID, req.CompanyID, req.VehicleID,
		req.TripDate, req.LoadingPoint, req.UnloadingPoint,
		req.Tonnage, req.Rates.toDomain(), req.Expenses.toDomain())
	if err != nil {
		return nil, err
	}

	if err := s.tripRepo.Save(ctx, t); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, t)

	response := ToTripResponse(t)
	return &response, nil
}

// validateReferences checks that the supplier, company and vehicle all exist
// within the tenant. Misses are reported as foreign references so the caller
// cannot probe other tenants' data through trip creation.
func (s *TripService) validateReferences(ctx context.Context, tenantID, supplierID, companyID, vehicleID uuid.UUID) error {
	if _, err := s.supplierRepo.FindByIDForTenant(ctx, tenantID, supplierID); err != nil {
		return asForeignReference(err, "Supplier reference is not available in this tenant")
	}
	if _, err := s.companyRepo.FindByIDForTenant(ctx, tenantID, companyID); err != nil {
		return asForeignReference(err, "Company reference is not available in this tenant")
	}
	if _, err := s.vehicleRepo.FindByIDForTenant(ctx, tenantID, vehicleID); err != nil {
		return asForeignReference(err, "Vehicle reference is not available in this tenant")
	}
	return nil
}

func asForeignReference(err error, message string) error {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) && domainErr.Code == shared.ErrNotFound.Code {
		return shared.NewDomainError(shared.ErrForeignTenantReference.Code, message)
	}
	return err
}

// GetByID retrieves a trip by ID
func (s *TripService) GetByID(ctx context.Context, tenantID, tripID uuid.UUID) (*TripResponse, error) {
	t, err := s.tripRepo.FindByIDForTenant(ctx, tenantID, tripID)
	if err != nil {
		return nil, err
	}
	response := ToTripResponse(t)
	return &response, nil
}

// GetByTripNumber retrieves a trip by its number
func (s *TripService) GetByTripNumber(ctx context.Context, tenantID uuid.UUID, tripNumber string) (*TripResponse, error) {
	t, err := s.tripRepo.FindByTripNumber(ctx, tenantID, tripNumber)
	if err != nil {
		return nil, err
	}
	response := ToTripResponse(t)
	return &response, nil
}

// List retrieves a list of trips with filtering and pagination
func (s *TripService) List(ctx context.Context, tenantID uuid.UUID, filter TripListFilter) ([]TripResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "trip_date"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}

	if filter.SupplierID != nil {
		domainFilter.Filters["supplier_id"] = *filter.SupplierID
	}
	if filter.CompanyID != nil {
		domainFilter.Filters["company_id"] = *filter.CompanyID
	}
	if filter.VehicleID != nil {
		domainFilter.Filters["vehicle_id"] = *filter.VehicleID
	}
	if filter.Status != nil {
		domainFilter.Filters["status"] = string(*filter.Status)
	}
	if filter.StartDate != nil {
		domainFilter.Filters["start_date"] = *filter.StartDate
	}
	if filter.EndDate != nil {
		domainFilter.Filters["end_date"] = *filter.EndDate
	}

	trips, err := s.tripRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.tripRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]TripResponse, len(trips))
	for i := range trips {
		responses[i] = ToTripResponse(&trips[i])
	}
	return responses, total, nil
}

// Update applies a partial update to a trip. Any change to the financial
// inputs recomputes the snapshot before the write, and the write itself is
// guarded by optimistic locking.
func (s *TripService) Update(ctx context.Context, tenantID, tripID uuid.UUID, req UpdateTripRequest) (*TripResponse, error) {
	t, err := s.tripRepo.FindByIDForTenant(ctx, tenantID, tripID)
	if err != nil {
		return nil, err
	}

	if req.Version != nil && *req.Version != t.Version {
		return nil, shared.NewDomainError(shared.ErrConcurrencyConflict.Code,
			"Trip was modified since it was last read")
	}

	if req.TripDate != nil {
		if err := t.SetTripDate(*req.TripDate); err != nil {
			return nil, err
		}
	}
	if req.LoadingPoint != nil || req.UnloadingPoint != nil {
		loading := t.LoadingPoint
		unloading := t.UnloadingPoint
		if req.LoadingPoint != nil {
			loading = *req.LoadingPoint
		}
		if req.UnloadingPoint != nil {
			unloading = *req.UnloadingPoint
		}
		t.SetRoute(loading, unloading)
	}
	if req.Rates != nil {
		if err := t.SetRates(req.Rates.toDomain()); err != nil {
			return nil, err
		}
	}
	if req.Expenses != nil {
		if err := t.SetExpenses(req.Expenses.toDomain()); err != nil {
			return nil, err
		}
	}
	if req.Tonnage != nil {
		if err := t.SetTonnage(*req.Tonnage); err != nil {
			return nil, err
		}
	}

	if err := s.tripRepo.SaveWithLock(ctx, t); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, t)

	response := ToTripResponse(t)
	return &response, nil
}

// Recalculate re-derives the financial snapshot from the stored inputs and
// persists it. Returns the recomputed profit.
func (s *TripService) Recalculate(ctx context.Context, tenantID, tripID uuid.UUID) (*RecalculateResponse, error) {
	t, err := s.tripRepo.FindByIDForTenant(ctx, tenantID, tripID)
	if err != nil {
		return nil, err
	}

	profit, err := t.Recalculate()
	if err != nil {
		return nil, err
	}

	if err := s.tripRepo.SaveWithLock(ctx, t); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, t)

	return &RecalculateResponse{TripID: t.ID, Profit: profit}, nil
}

// Start moves a trip from pending to running
func (s *TripService) Start(ctx context.Context, tenantID, tripID uuid.UUID) (*TripResponse, error) {
	return s.transition(ctx, tenantID, tripID, func(t *trip.Trip) error {
		return t.Start()
	})
}

// Complete moves a trip from running to completed
func (s *TripService) Complete(ctx context.Context, tenantID, tripID uuid.UUID) (*TripResponse, error) {
	return s.transition(ctx, tenantID, tripID, func(t *trip.Trip) error {
		return t.Complete()
	})
}

// Cancel cancels a trip that has not reached a terminal state
func (s *TripService) Cancel(ctx context.Context, tenantID, tripID uuid.UUID, req CancelTripRequest) (*TripResponse, error) {
	return s.transition(ctx, tenantID, tripID, func(t *trip.Trip) error {
		return t.Cancel(req.Reason)
	})
}

func (s *TripService) transition(ctx context.Context, tenantID, tripID uuid.UUID, fn func(*trip.Trip) error) (*TripResponse, error) {
	t, err := s.tripRepo.FindByIDForTenant(ctx, tenantID, tripID)
	if err != nil {
		return nil, err
	}

	if err := fn(t); err != nil {
		return nil, err
	}

	if err := s.tripRepo.SaveWithLock(ctx, t); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, t)

	response := ToTripResponse(t)
	return &response, nil
}

// Delete soft-deletes a trip. The record stays in place but disappears from
// reads and report totals.
func (s *TripService) Delete(ctx context.Context, tenantID, tripID uuid.UUID) error {
	t, err := s.tripRepo.FindByIDForTenant(ctx, tenantID, tripID)
	if err != nil {
		return err
	}

	if err := t.SoftDelete(); err != nil {
		return err
	}

	if err := s.tripRepo.SaveWithLock(ctx, t); err != nil {
		return err
	}

	s.publishEvents(ctx, t)
	return nil
}

// publishEvents publishes the aggregate's pending events. Failures are
// logged and do not fail the operation.
func (s *TripService) publishEvents(ctx context.Context, aggregate shared.AggregateRoot) {
	if s.eventPublisher == nil {
		return
	}
	events := aggregate.GetDomainEvents()
	if len(events) == 0 {
		return
	}
	if err := s.eventPublisher.Publish(ctx, events...); err != nil {
		s.logger.Error("Failed to publish domain events", zap.Error(err))
	}
	aggregate.ClearDomainEvents()
}
