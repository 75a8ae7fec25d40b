package partner

import (
	"context"

	"github.com/fleetledger/backend/internal/domain/partner"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SupplierService handles supplier business operations
type SupplierService struct {
	supplierRepo   partner.SupplierRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(supplierRepo partner.SupplierRepository, logger *zap.Logger) *SupplierService {
	return &SupplierService{
		supplierRepo: supplierRepo,
		logger:       logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *SupplierService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a new supplier
func (s *SupplierService) Create(ctx context.Context, tenantID uuid.UUID, req CreateSupplierRequest) (*SupplierResponse, error) {
	exists, err := s.supplierRepo.ExistsByCode(ctx, tenantID, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Supplier code already exists")
	}

	supplier, err := partner.NewSupplier(tenantID, req.Code, req.Name)
	if err != nil {
		return nil, err
	}

	if req.ContactName != "" || req.Phone != "" || req.Email != "" {
		if err := supplier.SetContact(req.ContactName, req.Phone, req.Email); err != nil {
			return nil, err
		}
	}
	if req.Address != "" || req.City != "" || req.State != "" {
		supplier.SetAddress(req.Address, req.City, req.State)
	}
	if req.GSTNumber != "" || req.PANNumber != "" {
		if err := supplier.SetTaxInfo(req.GSTNumber, req.PANNumber); err != nil {
			return nil, err
		}
	}
	if req.BankName != "" || req.BankAccount != "" || req.IFSCCode != "" {
		supplier.SetBankDetails(req.BankName, req.BankAccount, req.IFSCCode)
	}
	if req.CreditLimit != nil {
		if err := supplier.SetCreditLimit(*req.CreditLimit); err != nil {
			return nil, err
		}
	}
	supplier.Notes = req.Notes

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, supplier)

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// GetByID retrieves a supplier by ID
func (s *SupplierService) GetByID(ctx context.Context, tenantID, supplierID uuid.UUID) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByIDForTenant(ctx, tenantID, supplierID)
	if err != nil {
		return nil, err
	}
	response := ToSupplierResponse(supplier)
	return &response, nil
}

// GetByCode retrieves a supplier by its code
func (s *SupplierService) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByCode(ctx, tenantID, code)
	if err != nil {
		return nil, err
	}
	response := ToSupplierResponse(supplier)
	return &response, nil
}

// List retrieves suppliers with filtering and pagination
func (s *SupplierService) List(ctx context.Context, tenantID uuid.UUID, filter PartnerListFilter) ([]SupplierResponse, int64, error) {
	domainFilter := buildPartnerFilter(filter)

	suppliers, err := s.supplierRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.supplierRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		responses[i] = ToSupplierResponse(&suppliers[i])
	}
	return responses, total, nil
}

// Update applies a partial update to a supplier
func (s *SupplierService) Update(ctx context.Context, tenantID, supplierID uuid.UUID, req UpdateSupplierRequest) (*SupplierResponse, error) {
	supplier, err := s.supplierRepo.FindByIDForTenant(ctx, tenantID, supplierID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := supplier.Update(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.ContactName != nil || req.Phone != nil || req.Email != nil {
		contact := orCurrent(req.ContactName, supplier.ContactName)
		phone := orCurrent(req.Phone, supplier.Phone)
		email := orCurrent(req.Email, supplier.Email)
		if err := supplier.SetContact(contact, phone, email); err != nil {
			return nil, err
		}
	}
	if req.Address != nil || req.City != nil || req.State != nil {
		supplier.SetAddress(
			orCurrent(req.Address, supplier.Address),
			orCurrent(req.City, supplier.City),
			orCurrent(req.State, supplier.State))
	}
	if req.GSTNumber != nil || req.PANNumber != nil {
		gst := orCurrent(req.GSTNumber, supplier.GSTNumber)
		pan := orCurrent(req.PANNumber, supplier.PANNumber)
		if err := supplier.SetTaxInfo(gst, pan); err != nil {
			return nil, err
		}
	}
	if req.BankName != nil || req.BankAccount != nil || req.IFSCCode != nil {
		supplier.SetBankDetails(
			orCurrent(req.BankName, supplier.BankName),
			orCurrent(req.BankAccount, supplier.BankAccount),
			orCurrent(req.IFSCCode, supplier.IFSCCode))
	}
	if req.CreditLimit != nil {
		if err := supplier.SetCreditLimit(*req.CreditLimit); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		supplier.Notes = *req.Notes
	}

	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	response := ToSupplierResponse(supplier)
	return &response, nil
}

// Activate marks a supplier active
func (s *SupplierService) Activate(ctx context.Context, tenantID, supplierID uuid.UUID) error {
	supplier, err := s.supplierRepo.FindByIDForTenant(ctx, tenantID, supplierID)
	if err != nil {
		return err
	}
	supplier.Activate()
	return s.supplierRepo.Save(ctx, supplier)
}

// Deactivate marks a supplier inactive
func (s *SupplierService) Deactivate(ctx context.Context, tenantID, supplierID uuid.UUID) error {
	supplier, err := s.supplierRepo.FindByIDForTenant(ctx, tenantID, supplierID)
	if err != nil {
		return err
	}
	supplier.Deactivate()
	return s.supplierRepo.Save(ctx, supplier)
}

// Delete removes a supplier
func (s *SupplierService) Delete(ctx context.Context, tenantID, supplierID uuid.UUID) error {
	if _, err := s.supplierRepo.FindByIDForTenant(ctx, tenantID, supplierID); err != nil {
		return err
	}
	return s.supplierRepo.DeleteForTenant(ctx, tenantID, supplierID)
}

func (s *SupplierService) publishEvents(ctx context.Context, aggregate shared.AggregateRoot) {
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

// orCurrent returns the override when set, otherwise the current value
func orCurrent(override *string, current string) string {
	if override != nil {
		return *override
	}
	return current
}

// buildPartnerFilter applies list defaults and maps to the domain filter
func buildPartnerFilter(filter PartnerListFilter) shared.Filter {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "created_at"
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
	if filter.Status != nil {
		domainFilter.Filters["status"] = *filter.Status
	}
	return domainFilter
}
