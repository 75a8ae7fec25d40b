package partner

import (
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Aggregate type constants
const (
	AggregateTypeSupplier = "Supplier"
	AggregateTypeCompany  = "Company"
	AggregateTypeVehicle  = "Vehicle"
)

// Event type constants
const (
	EventTypeSupplierCreated = "SupplierCreated"
	EventTypeCompanyCreated  = "CompanyCreated"
	EventTypeVehicleCreated  = "VehicleCreated"
)

// SupplierCreatedEvent is published when a new supplier is created
type SupplierCreatedEvent struct {
	shared.BaseDomainEvent
	SupplierID uuid.UUID `json:"supplier_id"`
	Code       string    `json:"code"`
	Name       string    `json:"name"`
}

// NewSupplierCreatedEvent creates a new SupplierCreatedEvent
func NewSupplierCreatedEvent(supplier *Supplier) *SupplierCreatedEvent {
	return &SupplierCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSupplierCreated, AggregateTypeSupplier, supplier.ID, supplier.TenantID),
		SupplierID:      supplier.ID,
		Code:            supplier.Code,
		Name:            supplier.Name,
	}
}

// CompanyCreatedEvent is published when a new freight company is created
type CompanyCreatedEvent struct {
	shared.BaseDomainEvent
	CompanyID uuid.UUID `json:"company_id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
}

// NewCompanyCreatedEvent creates a new CompanyCreatedEvent
func NewCompanyCreatedEvent(company *Company) *CompanyCreatedEvent {
	return &CompanyCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCompanyCreated, AggregateTypeCompany, company.ID, company.TenantID),
		CompanyID:       company.ID,
		Code:            company.Code,
		Name:            company.Name,
	}
}

// VehicleCreatedEvent is published when a new vehicle is registered
type VehicleCreatedEvent struct {
	shared.BaseDomainEvent
	VehicleID          uuid.UUID `json:"vehicle_id"`
	RegistrationNumber string    `json:"registration_number"`
	OwnerName          string    `json:"owner_name"`
}

// NewVehicleCreatedEvent creates a new VehicleCreatedEvent
func NewVehicleCreatedEvent(vehicle *Vehicle) *VehicleCreatedEvent {
	return &VehicleCreatedEvent{
		BaseDomainEvent:    shared.NewBaseDomainEvent(EventTypeVehicleCreated, AggregateTypeVehicle, vehicle.ID, vehicle.TenantID),
		VehicleID:          vehicle.ID,
		RegistrationNumber: vehicle.RegistrationNumber,
		OwnerName:          vehicle.OwnerName,
	}
}
