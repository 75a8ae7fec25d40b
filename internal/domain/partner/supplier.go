package partner

import (
	"strings"
	"time"

	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SupplierStatus represents the status of a supplier
type SupplierStatus string

const (
	SupplierStatusActive   SupplierStatus = "active"
	SupplierStatusInactive SupplierStatus = "inactive"
)

// Supplier is a load provider: the party that books freight onto the
// tenant's trips. Reference data only; trips link to it but nothing is
// computed on it.
type Supplier struct {
	shared.TenantAggregateRoot
	Code        string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_supplier_tenant_code,priority:2"`
	Name        string          `gorm:"type:varchar(200);not null"`
	ContactName string          `gorm:"type:varchar(100)"`
	Phone       string          `gorm:"type:varchar(50);index"`
	Email       string          `gorm:"type:varchar(200)"`
	Address     string          `gorm:"type:text"`
	City        string          `gorm:"type:varchar(100)"`
	State       string          `gorm:"type:varchar(100)"`
	GSTNumber   string          `gorm:"type:varchar(20)"`
	PANNumber   string          `gorm:"type:varchar(15)"`
	BankName    string          `gorm:"type:varchar(200)"`
	BankAccount string          `gorm:"type:varchar(50)"`
	IFSCCode    string          `gorm:"type:varchar(15)"`
	CreditLimit decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	Status      SupplierStatus  `gorm:"type:varchar(20);not null;default:'active'"`
	Notes       string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}

// NewSupplier creates a new supplier with required fields
func NewSupplier(tenantID uuid.UUID, code, name string) (*Supplier, error) {
	if err := validatePartnerCode(code); err != nil {
		return nil, err
	}
	if err := validatePartnerName(name); err != nil {
		return nil, err
	}

	supplier := &Supplier{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                strings.ToUpper(code),
		Name:                name,
		CreditLimit:         decimal.Zero,
		Status:              SupplierStatusActive,
	}

	supplier.AddDomainEvent(NewSupplierCreatedEvent(supplier))
	return supplier, nil
}

// Update updates the supplier's basic information
func (s *Supplier) Update(name string) error {
	if err := validatePartnerName(name); err != nil {
		return err
	}
	s.Name = name
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// SetContact sets the supplier's contact information
func (s *Supplier) SetContact(contactName, phone, email string) error {
	if contactName != "" && len(contactName) > 100 {
		return shared.NewDomainError("INVALID_ARGUMENT", "Contact name cannot exceed 100 characters")
	}
	s.ContactName = contactName
	s.Phone = phone
	s.Email = email
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// SetAddress sets the supplier's address
func (s *Supplier) SetAddress(address, city, state string) {
	s.Address = address
	s.City = city
	s.State = state
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// SetTaxInfo sets GST and PAN identifiers
func (s *Supplier) SetTaxInfo(gstNumber, panNumber string) error {
	if err := validateGSTNumber(gstNumber); err != nil {
		return err
	}
	if err := validatePANNumber(panNumber); err != nil {
		return err
	}
	s.GSTNumber = strings.ToUpper(gstNumber)
	s.PANNumber = strings.ToUpper(panNumber)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// SetBankDetails sets the supplier's settlement bank account
func (s *Supplier) SetBankDetails(bankName, bankAccount, ifscCode string) {
	s.BankName = bankName
	s.BankAccount = bankAccount
	s.IFSCCode = strings.ToUpper(ifscCode)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// SetCreditLimit sets the maximum outstanding credit allowed
func (s *Supplier) SetCreditLimit(limit decimal.Decimal) error {
	if limit.IsNegative() {
		return shared.NewDomainError("INVALID_ARGUMENT", "Credit limit cannot be negative")
	}
	s.CreditLimit = limit
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// Activate marks the supplier active
func (s *Supplier) Activate() {
	s.Status = SupplierStatusActive
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// Deactivate marks the supplier inactive
func (s *Supplier) Deactivate() {
	s.Status = SupplierStatusInactive
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// IsActive returns true if the supplier is active
func (s *Supplier) IsActive() bool {
	return s.Status == SupplierStatusActive
}
