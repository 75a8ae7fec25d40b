package partner

import (
	"context"

	"github.com/fleetledger/backend/internal/domain/partner"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CompanyService handles freight company business operations
type CompanyService struct {
	companyRepo    partner.CompanyRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(companyRepo partner.CompanyRepository, logger *zap.Logger) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		logger:      logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *CompanyService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a new freight company
func (s *CompanyService) Create(ctx context.Context, tenantID uuid.UUID, req CreateCompanyRequest) (*CompanyResponse, error) {
	exists, err := s.companyRepo.ExistsByCode(ctx, tenantID, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Company code already exists")
	}

	company, err := partner.NewCompany(tenantID, req.Code, req.Name)
	if err != nil {
		return nil, err
	}

	if req.ContactName != "" || req.Phone != "" || req.Email != "" {
		if err := company.SetContact(req.ContactName, req.Phone, req.Email); err != nil {
			return nil, err
		}
	}
	if req.Address != "" || req.City != "" || req.State != "" {
		company.SetAddress(req.Address, req.City, req.State)
	}
	if req.GSTNumber != "" || req.PANNumber != "" {
		if err := company.SetTaxInfo(req.GSTNumber, req.PANNumber); err != nil {
			return nil, err
		}
	}
	if req.CreditLimit != nil {
		if err := company.SetCreditLimit(*req.CreditLimit); err != nil {
			return nil, err
		}
	}
	company.Notes = req.Notes

	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, company)

	response := ToCompanyResponse(company)
	return &response, nil
}

// GetByID retrieves a company by ID
func (s *CompanyService) GetByID(ctx context.Context, tenantID, companyID uuid.UUID) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByIDForTenant(ctx, tenantID, companyID)
	if err != nil {
		return nil, err
	}
	response := ToCompanyResponse(company)
	return &response, nil
}

// GetByCode retrieves a company by its code
func (s *CompanyService) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByCode(ctx, tenantID, code)
	if err != nil {
		return nil, err
	}
	response := ToCompanyResponse(company)
	return &response, nil
}

// List retrieves companies with filtering and pagination
func (s *CompanyService) List(ctx context.Context, tenantID uuid.UUID, filter PartnerListFilter) ([]CompanyResponse, int64, error) {
	domainFilter := buildPartnerFilter(filter)

	companies, err := s.companyRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.companyRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CompanyResponse, len(companies))
	for i := range companies {
		responses[i] = ToCompanyResponse(&companies[i])
	}
	return responses, total, nil
}

// Update applies a partial update to a company
func (s *CompanyService) Update(ctx context.Context, tenantID, companyID uuid.UUID, req UpdateCompanyRequest) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByIDForTenant(ctx, tenantID, companyID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := company.Update(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.ContactName != nil || req.Phone != nil || req.Email != nil {
		if err := company.SetContact(
			orCurrent(req.ContactName, company.ContactName),
			orCurrent(req.Phone, company.Phone),
			orCurrent(req.Email, company.Email)); err != nil {
			return nil, err
		}
	}
	if req.Address != nil || req.City != nil || req.State != nil {
		company.SetAddress(
			orCurrent(req.Address, company.Address),
			orCurrent(req.City, company.City),
			orCurrent(req.State, company.State))
	}
	if req.GSTNumber != nil || req.PANNumber != nil {
		if err := company.SetTaxInfo(
			orCurrent(req.GSTNumber, company.GSTNumber),
			orCurrent(req.PANNumber, company.PANNumber)); err != nil {
			return nil, err
		}
	}
	if req.CreditLimit != nil {
		if err := company.SetCreditLimit(*req.CreditLimit); err != nil {
			return nil, err
		}
	}
	if req.Notes != nil {
		company.Notes = *req.Notes
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}

	response := ToCompanyResponse(company)
	return &response, nil
}

// Activate marks a company active
func (s *CompanyService) Activate(ctx context.Context, tenantID, companyID uuid.UUID) error {
	company, err := s.companyRepo.FindByIDForTenant(ctx, tenantID, companyID)
	if err != nil {
		return err
	}
	company.Activate()
	return s.companyRepo.Save(ctx, company)
}

// Deactivate marks a company inactive
func (s *CompanyService) Deactivate(ctx context.Context, tenantID, companyID uuid.UUID) error {
	company, err := s.companyRepo.FindByIDForTenant(ctx, tenantID, companyID)
	if err != nil {
		return err
	}
	company.Deactivate()
	return s.companyRepo.Save(ctx, company)
}

// Delete removes a company
func (s *CompanyService) Delete(ctx context.Context, tenantID, companyID uuid.UUID) error {
	if _, err := s.companyRepo.FindByIDForTenant(ctx, tenantID, companyID); err != nil {
		return err
	}
	return s.companyRepo.DeleteForTenant(ctx, tenantID, companyID)
}

func (s *CompanyService) publishEvents(ctx context.Context, aggregate shared.AggregateRoot) {
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
