package trip

import (
	"context"
	"errors"

	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/fleetledger/backend/internal/domain/trip"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AdvancePaymentService handles advance payment business operations
type AdvancePaymentService struct {
	advanceRepo    trip.AdvancePaymentRepository
	tripRepo       trip.TripRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewAdvancePaymentService creates a new AdvancePaymentService
func NewAdvancePaymentService(advanceRepo trip.AdvancePaymentRepository, tripRepo trip.TripRepository,
	logger *zap.Logger) *AdvancePaymentService {
	return &AdvancePaymentService{
		advanceRepo: advanceRepo,
		tripRepo:    tripRepo,
		logger:      logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *AdvancePaymentService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create records an advance payment. Trip-scoped advances must reference a
// trip that resolves within the caller's tenant.
func (s *AdvancePaymentService) Create(ctx context.Context, tenantID uuid.UUID, req CreateAdvancePaymentRequest) (*AdvancePaymentResponse, error) {
	if req.TripID != nil {
		if _, err := s.tripRepo.FindByIDForTenant(ctx, tenantID, *req.TripID); err != nil {
			var domainErr *shared.DomainError
			if errors.As(err, &domainErr) && domainErr.Code == shared.ErrNotFound.Code {
				return nil, shared.NewDomainError(shared.ErrForeignTenantReference.Code,
					"Trip reference is not available in this tenant")
			}
			return nil, err
		}
	}

	advance, err := trip.NewAdvancePayment(tenantID,
		trip.PartyRole(req.PayerRole), trip.PartyRole(req.ReceiverRole),
		req.Amount, trip.AdvanceScope(req.Scope), req.TripID, req.PaidOn, req.Note)
	if err != nil {
		return nil, err
	}

	if err := s.advanceRepo.Save(ctx, advance); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, advance)

	response := ToAdvancePaymentResponse(advance)
	return &response, nil
}

// GetByID retrieves an advance payment by ID
func (s *AdvancePaymentService) GetByID(ctx context.Context, tenantID, advanceID uuid.UUID) (*AdvancePaymentResponse, error) {
	advance, err := s.advanceRepo.FindByIDForTenant(ctx, tenantID, advanceID)
	if err != nil {
		return nil, err
	}
	response := ToAdvancePaymentResponse(advance)
	return &response, nil
}

// List retrieves advance payments with filtering and pagination
func (s *AdvancePaymentService) List(ctx context.Context, tenantID uuid.UUID, filter AdvancePaymentListFilter) ([]AdvancePaymentResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "paid_on"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "desc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Filters:  make(map[string]interface{}),
	}

	if filter.TripID != nil {
		domainFilter.Filters["trip_id"] = *filter.TripID
	}
	if filter.PayerRole != nil {
		domainFilter.Filters["payer_role"] = *filter.PayerRole
	}
	if filter.Scope != nil {
		domainFilter.Filters["scope"] = *filter.Scope
	}
	if filter.StartDate != nil {
		domainFilter.Filters["start_date"] = *filter.StartDate
	}
	if filter.EndDate != nil {
		domainFilter.Filters["end_date"] = *filter.EndDate
	}

	advances, err := s.advanceRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.advanceRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]AdvancePaymentResponse, len(advances))
	for i := range advances {
		responses[i] = ToAdvancePaymentResponse(&advances[i])
	}
	return responses, total, nil
}

// ListByTrip retrieves all advances linked to a trip
func (s *AdvancePaymentService) ListByTrip(ctx context.Context, tenantID, tripID uuid.UUID) ([]AdvancePaymentResponse, error) {
	advances, err := s.advanceRepo.FindByTrip(ctx, tenantID, tripID)
	if err != nil {
		return nil, err
	}
	responses := make([]AdvancePaymentResponse, len(advances))
	for i := range advances {
		responses[i] = ToAdvancePaymentResponse(&advances[i])
	}
	return responses, nil
}

// Delete soft-deletes an advance payment
func (s *AdvancePaymentService) Delete(ctx context.Context, tenantID, advanceID uuid.UUID) error {
	advance, err := s.advanceRepo.FindByIDForTenant(ctx, tenantID, advanceID)
	if err != nil {
		return err
	}

	if err := advance.SoftDelete(); err != nil {
		return err
	}

	return s.advanceRepo.Save(ctx, advance)
}

func (s *AdvancePaymentService) publishEvents(ctx context.Context, aggregate shared.AggregateRoot) {
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
