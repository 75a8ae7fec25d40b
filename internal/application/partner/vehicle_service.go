package partner

import (
	"context"

	"github.com/fleetledger/backend/internal/domain/partner"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VehicleService handles vehicle business operations
type VehicleService struct {
	vehicleRepo    partner.VehicleRepository
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewVehicleService creates a new VehicleService
func NewVehicleService(vehicleRepo partner.VehicleRepository, logger *zap.Logger) *VehicleService {
	return &VehicleService{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *VehicleService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a new vehicle
func (s *VehicleService) Create(ctx context.Context, tenantID uuid.UUID, req CreateVehicleRequest) (*VehicleResponse, error) {
	exists, err := s.vehicleRepo.ExistsByRegistration(ctx, tenantID, req.RegistrationNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Vehicle registration already exists")
	}

	vehicle, err := partner.NewVehicle(tenantID, req.RegistrationNumber, req.OwnerName, partner.VehicleType(req.Type))
	if err != nil {
		return nil, err
	}

	if req.CapacityTons != nil {
		if err := vehicle.SetCapacity(*req.CapacityTons); err != nil {
			return nil, err
		}
	}
	if req.Phone != "" {
		vehicle.SetContact(req.Phone)
	}
	if req.PANNumber != "" {
		if err := vehicle.SetTaxInfo(req.PANNumber); err != nil {
			return nil, err
		}
	}
	if req.BankName != "" || req.BankAccount != "" || req.IFSCCode != "" {
		vehicle.SetBankDetails(req.BankName, req.BankAccount, req.IFSCCode)
	}
	vehicle.Notes = req.Notes

	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, vehicle)

	response := ToVehicleResponse(vehicle)
	return &response, nil
}

// GetByID retrieves a vehicle by ID
func (s *VehicleService) GetByID(ctx context.Context, tenantID, vehicleID uuid.UUID) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByIDForTenant(ctx, tenantID, vehicleID)
	if err != nil {
		return nil, err
	}
	response := ToVehicleResponse(vehicle)
	return &response, nil
}

// GetByRegistration retrieves a vehicle by its registration number
func (s *VehicleService) GetByRegistration(ctx context.Context, tenantID uuid.UUID, registrationNumber string) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByRegistration(ctx, tenantID, registrationNumber)
	if err != nil {
		return nil, err
	}
	response := ToVehicleResponse(vehicle)
	return &response, nil
}

// List retrieves vehicles with filtering and pagination
func (s *VehicleService) List(ctx context.Context, tenantID uuid.UUID, filter PartnerListFilter) ([]VehicleResponse, int64, error) {
	domainFilter := buildPartnerFilter(filter)

	vehicles, err := s.vehicleRepo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.vehicleRepo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]VehicleResponse, len(vehicles))
	for i := range vehicles {
		responses[i] = ToVehicleResponse(&vehicles[i])
	}
	return responses, total, nil
}

// Update applies a partial update to a vehicle
func (s *VehicleService) Update(ctx context.Context, tenantID, vehicleID uuid.UUID, req UpdateVehicleRequest) (*VehicleResponse, error) {
	vehicle, err := s.vehicleRepo.FindByIDForTenant(ctx, tenantID, vehicleID)
	if err != nil {
		return nil, err
	}

	if req.OwnerName != nil || req.Type != nil {
		ownerName := orCurrent(req.OwnerName, vehicle.OwnerName)
		vehicleType := vehicle.Type
		if req.Type != nil {
			vehicleType = partner.VehicleType(*req.Type)
		}
		if err := vehicle.Update(ownerName, vehicleType); err != nil {
			return nil, err
		}
	}
	if req.CapacityTons != nil {
		if err := vehicle.SetCapacity(*req.CapacityTons); err != nil {
			return nil, err
		}
	}
	if req.Phone != nil {
		vehicle.SetContact(*req.Phone)
	}
	if req.PANNumber != nil {
		if err := vehicle.SetTaxInfo(*req.PANNumber); err != nil {
			return nil, err
		}
	}
	if req.BankName != nil || req.BankAccount != nil || req.IFSCCode != nil {
		vehicle.SetBankDetails(
			orCurrent(req.BankName, vehicle.BankName),
			orCurrent(req.BankAccount, vehicle.BankAccount),
			orCurrent(req.IFSCCode, vehicle.IFSCCode))
	}
	if req.Notes != nil {
		vehicle.Notes = *req.Notes
	}

	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, err
	}

	response := ToVehicleResponse(vehicle)
	return &response, nil
}

// Activate marks a vehicle active
func (s *VehicleService) Activate(ctx context.Context, tenantID, vehicleID uuid.UUID) error {
	vehicle, err := s.vehicleRepo.FindByIDForTenant(ctx, tenantID, vehicleID)
	if err != nil {
		return err
	}
	vehicle.Activate()
	return s.vehicleRepo.Save(ctx, vehicle)
}

// Deactivate marks a vehicle inactive
func (s *VehicleService) Deactivate(ctx context.Context, tenantID, vehicleID uuid.UUID) error {
	vehicle, err := s.vehicleRepo.FindByIDForTenant(ctx, tenantID, vehicleID)
	if err != nil {
		return err
	}
	vehicle.Deactivate()
	return s.vehicleRepo.Save(ctx, vehicle)
}

// MarkUnderMaintenance marks a vehicle as under maintenance
func (s *VehicleService) MarkUnderMaintenance(ctx context.Context, tenantID, vehicleID uuid.UUID) error {
	vehicle, err := s.vehicleRepo.FindByIDForTenant(ctx, tenantID, vehicleID)
	if err != nil {
		return err
	}
	vehicle.MarkUnderMaintenance()
	return s.vehicleRepo.Save(ctx, vehicle)
}

// Delete removes a vehicle
func (s *VehicleService) Delete(ctx context.Context, tenantID, vehicleID uuid.UUID) error {
	if _, err := s.vehicleRepo.FindByIDForTenant(ctx, tenantID, vehicleID); err != nil {
		return err
	}
	return s.vehicleRepo.DeleteForTenant(ctx, tenantID, vehicleID)
}

func (s *VehicleService) publishEvents(ctx context.Context, aggregate shared.AggregateRoot) {
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
