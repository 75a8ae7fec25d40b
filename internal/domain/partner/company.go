package partner

import (
	"strings"
	"time"

	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CompanyStatus represents the status of a freight company
type CompanyStatus string

const (
	CompanyStatusActive   CompanyStatus = "active"
	CompanyStatusInactive CompanyStatus = "inactive"
)

// Company is a freight customer: the party billed at the company rate for
// tonnage hauled on its behalf.
type Company struct {
	shared.TenantAggregateRoot
	Code        string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_company_tenant_code,priority:2"`
	Name        string          `gorm:"type:varchar(200);not null"`
	ContactName string          `gorm:"type:varchar(100)"`
	Phone       string          `gorm:"type:varchar(50);index"`
	Email       string          `gorm:"type:varchar(200)"`
	Address     string          `gorm:"type:text"`
	City        string          `gorm:"type:varchar(100)"`
	State       string          `gorm:"type:varchar(100)"`
	GSTNumber   string          `gorm:"type:varchar(20)"`
	PANNumber   string          `gorm:"type:varchar(15)"`
	CreditLimit decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	Status      CompanyStatus   `gorm:"type:varchar(20);not null;default:'active'"`
	Notes       string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Company) TableName() string {
	return "companies"
}

// NewCompany creates a new freight company with required fields
func NewCompany(tenantID uuid.UUID, code, name string) (*Company, error) {
	if err := validatePartnerCode(code); err != nil {
		return nil, err
	}
	if err := validatePartnerName(name); err != nil {
		return nil, err
	}

	company := &Company{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                strings.ToUpper(code),
		Name:                name,
		CreditLimit:         decimal.Zero,
		Status:              CompanyStatusActive,
	}

	company.AddDomainEvent(NewCompanyCreatedEvent(company))
	return company, nil
}

// Update updates the company's basic information
func (c *Company) Update(name string) error {
	if err := validatePartnerName(name); err != nil {
		return err
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// SetContact sets the company's contact information
func (c *Company) SetContact(contactName, phone, email string) error {
	if contactName != "" && len(contactName) > 100 {
		return shared.NewDomainError("INVALID_ARGUMENT", "Contact name cannot exceed 100 characters")
	}
	c.ContactName = contactName
	c.Phone = phone
	c.Email = email
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// SetAddress sets the company's address
func (c *Company) SetAddress(address, city, state string) {
	c.Address = address
	c.City = city
	c.State = state
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// SetTaxInfo sets GST and PAN identifiers
func (c *Company) SetTaxInfo(gstNumber, panNumber string) error {
	if err := validateGSTNumber(gstNumber); err != nil {
		return err
	}
	if err := validatePANNumber(panNumber); err != nil {
		return err
	}
	c.GSTNumber = strings.ToUpper(gstNumber)
	c.PANNumber = strings.ToUpper(panNumber)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// SetCreditLimit sets the maximum outstanding credit allowed
func (c *Company) SetCreditLimit(limit decimal.Decimal) error {
	if limit.IsNegative() {
		return shared.NewDomainError("INVALID_ARGUMENT", "Credit limit cannot be negative")
	}
	c.CreditLimit = limit
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// Activate marks the company active
func (c *Company) Activate() {
	c.Status = CompanyStatusActive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// Deactivate marks the company inactive
func (c *Company) Deactivate() {
	c.Status = CompanyStatusInactive
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// IsActive returns true if the company is active
func (c *Company) IsActive() bool {
	return c.Status == CompanyStatusActive
}
