package partner

import (
	"strings"
	"time"

	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VehicleStatus represents the status of a vehicle
type VehicleStatus string

const (
	VehicleStatusActive      VehicleStatus = "active"
	VehicleStatusInactive    VehicleStatus = "inactive"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

// VehicleType represents the body type of a vehicle
type VehicleType string

const (
	VehicleTypeTruck   VehicleType = "truck"
	VehicleTypeTrailer VehicleType = "trailer"
	VehicleTypeTipper  VehicleType = "tipper"
	VehicleTypeTanker  VehicleType = "tanker"
)

// IsValid checks if the type is a valid VehicleType
func (t VehicleType) IsValid() bool {
	switch t {
	case VehicleTypeTruck, VehicleTypeTrailer, VehicleTypeTipper, VehicleTypeTanker:
		return true
	}
	return false
}

// Vehicle is a truck on the tenant's roster, either owned or attached.
// Paid at the vehicle rate for tonnage hauled.
type Vehicle struct {
	shared.TenantAggregateRoot
	RegistrationNumber string          `gorm:"type:varchar(20);not null;uniqueIndex:idx_vehicle_tenant_reg,priority:2"`
	OwnerName          string          `gorm:"type:varchar(200);not null"`
	Type               VehicleType     `gorm:"type:varchar(20);not null;default:'truck'"`
	CapacityTons       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Phone              string          `gorm:"type:varchar(50)"`
	PANNumber          string          `gorm:"type:varchar(15)"`
	BankName           string          `gorm:"type:varchar(200)"`
	BankAccount        string          `gorm:"type:varchar(50)"`
	IFSCCode           string          `gorm:"type:varchar(15)"`
	Status             VehicleStatus   `gorm:"type:varchar(20);not null;default:'active'"`
	Notes              string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Vehicle) TableName() string {
	return "vehicles"
}

// NewVehicle creates a new vehicle with required fields
func NewVehicle(tenantID uuid.UUID, registrationNumber, ownerName string, vehicleType VehicleType) (*Vehicle, error) {
	registrationNumber = strings.ToUpper(strings.TrimSpace(registrationNumber))
	if err := validateRegistrationNumber(registrationNumber); err != nil {
		return nil, err
	}
	if err := validatePartnerName(ownerName); err != nil {
		return nil, err
	}
	if !vehicleType.IsValid() {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Invalid vehicle type")
	}

	vehicle := &Vehicle{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		RegistrationNumber:  registrationNumber,
		OwnerName:           ownerName,
		Type:                vehicleType,
		CapacityTons:        decimal.Zero,
		Status:              VehicleStatusActive,
	}

	vehicle.AddDomainEvent(NewVehicleCreatedEvent(vehicle))
	return vehicle, nil
}

// Update updates the vehicle's owner name and type
func (v *Vehicle) Update(ownerName string, vehicleType VehicleType) error {
	if err := validatePartnerName(ownerName); err != nil {
		return err
	}
	if !vehicleType.IsValid() {
		return shared.NewDomainError("INVALID_ARGUMENT", "Invalid vehicle type")
	}
	v.OwnerName = ownerName
	v.Type = vehicleType
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
	return nil
}

// SetCapacity sets the rated load capacity in tons
func (v *Vehicle) SetCapacity(capacityTons decimal.Decimal) error {
	if capacityTons.IsNegative() {
		return shared.NewDomainError("INVALID_ARGUMENT", "Capacity cannot be negative")
	}
	v.CapacityTons = capacityTons
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
	return nil
}

// SetContact sets the owner's phone number
func (v *Vehicle) SetContact(phone string) {
	v.Phone = phone
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
}

// SetTaxInfo sets the owner's PAN identifier
func (v *Vehicle) SetTaxInfo(panNumber string) error {
	if err := validatePANNumber(panNumber); err != nil {
		return err
	}
	v.PANNumber = strings.ToUpper(panNumber)
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
	return nil
}

// SetBankDetails sets the owner's settlement bank account
func (v *Vehicle) SetBankDetails(bankName, bankAccount, ifscCode string) {
	v.BankName = bankName
	v.BankAccount = bankAccount
	v.IFSCCode = strings.ToUpper(ifscCode)
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
}

// Activate marks the vehicle active
func (v *Vehicle) Activate() {
	v.Status = VehicleStatusActive
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
}

// Deactivate marks the vehicle inactive
func (v *Vehicle) Deactivate() {
	v.Status = VehicleStatusInactive
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
}

// MarkUnderMaintenance marks the vehicle as under maintenance
func (v *Vehicle) MarkUnderMaintenance() {
	v.Status = VehicleStatusMaintenance
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
}

// IsActive returns true if the vehicle is active
func (v *Vehicle) IsActive() bool {
	return v.Status == VehicleStatusActive
}
