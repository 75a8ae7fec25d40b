package partner

import (
	"time"

	"github.com/fleetledger/backend/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ==================== Supplier DTOs ====================

// CreateSupplierRequest represents a request to create a supplier
type CreateSupplierRequest struct {
	Code        string           `json:"code" binding:"required,min=1,max=50"`
	Name        string           `json:"name" binding:"required,min=1,max=200"`
	ContactName string           `json:"contact_name" binding:"max=100"`
	Phone       string           `json:"phone" binding:"max=50"`
	Email       string           `json:"email" binding:"omitempty,email,max=200"`
	Address     string           `json:"address"`
	City        string           `json:"city" binding:"max=100"`
	State       string           `json:"state" binding:"max=100"`
	GSTNumber   string           `json:"gst_number" binding:"max=20"`
	PANNumber   string           `json:"pan_number" binding:"max=15"`
	BankName    string           `json:"bank_name" binding:"max=200"`
	BankAccount string           `json:"bank_account" binding:"max=50"`
	IFSCCode    string           `json:"ifsc_code" binding:"max=15"`
	CreditLimit *decimal.Decimal `json:"credit_limit"`
	Notes       string           `json:"notes"`
}

// UpdateSupplierRequest represents a partial update to a supplier
type UpdateSupplierRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	ContactName *string          `json:"contact_name" binding:"omitempty,max=100"`
	Phone       *string          `json:"phone" binding:"omitempty,max=50"`
	Email       *string          `json:"email" binding:"omitempty,max=200"`
	Address     *string          `json:"address"`
	City        *string          `json:"city" binding:"omitempty,max=100"`
	State       *string          `json:"state" binding:"omitempty,max=100"`
	GSTNumber   *string          `json:"gst_number" binding:"omitempty,max=20"`
	PANNumber   *string          `json:"pan_number" binding:"omitempty,max=15"`
	BankName    *string          `json:"bank_name" binding:"omitempty,max=200"`
	BankAccount *string          `json:"bank_account" binding:"omitempty,max=50"`
	IFSCCode    *string          `json:"ifsc_code" binding:"omitempty,max=15"`
	CreditLimit *decimal.Decimal `json:"credit_limit"`
	Notes       *string          `json:"notes"`
}

// SupplierResponse represents a supplier in API responses
type SupplierResponse struct {
	ID          uuid.UUID       `json:"id"`
	TenantID    uuid.UUID       `json:"tenant_id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	ContactName string          `json:"contact_name,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	Email       string          `json:"email,omitempty"`
	Address     string          `json:"address,omitempty"`
	City        string          `json:"city,omitempty"`
	State       string          `json:"state,omitempty"`
	GSTNumber   string          `json:"gst_number,omitempty"`
	PANNumber   string          `json:"pan_number,omitempty"`
	BankName    string          `json:"bank_name,omitempty"`
	BankAccount string          `json:"bank_account,omitempty"`
	IFSCCode    string          `json:"ifsc_code,omitempty"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToSupplierResponse converts a domain Supplier to a response DTO
func ToSupplierResponse(s *partner.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:          s.ID,
		TenantID:    s.TenantID,
		Code:        s.Code,
		Name:        s.Name,
		ContactName: s.ContactName,
		Phone:       s.Phone,
		Email:       s.Email,
		Address:     s.Address,
		City:        s.City,
		State:       s.State,
		GSTNumber:   s.GSTNumber,
		PANNumber:   s.PANNumber,
		BankName:    s.BankName,
		BankAccount: s.BankAccount,
		IFSCCode:    s.IFSCCode,
		CreditLimit: s.CreditLimit,
		Status:      string(s.Status),
		Notes:       s.Notes,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

// ==================== Company DTOs ====================

// CreateCompanyRequest represents a request to create a freight company
type CreateCompanyRequest struct {
	Code        string           `json:"code" binding:"required,min=1,max=50"`
	Name        string           `json:"name" binding:"required,min=1,max=200"`
	ContactName string           `json:"contact_name" binding:"max=100"`
	Phone       string           `json:"phone" binding:"max=50"`
	Email       string           `json:"email" binding:"omitempty,email,max=200"`
	Address     string           `json:"address"`
	City        string           `json:"city" binding:"max=100"`
	State       string           `json:"state" binding:"max=100"`
	GSTNumber   string           `json:"gst_number" binding:"max=20"`
	PANNumber   string           `json:"pan_number" binding:"max=15"`
	CreditLimit *decimal.Decimal `json:"credit_limit"`
	Notes       string           `json:"notes"`
}

// UpdateCompanyRequest represents a partial update to a freight company
type UpdateCompanyRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	ContactName *string          `json:"contact_name" binding:"omitempty,max=100"`
	Phone       *string          `json:"phone" binding:"omitempty,max=50"`
	Email       *string          `json:"email" binding:"omitempty,max=200"`
	Address     *string          `json:"address"`
	City        *string          `json:"city" binding:"omitempty,max=100"`
	State       *string          `json:"state" binding:"omitempty,max=100"`
	GSTNumber   *string          `json:"gst_number" binding:"omitempty,max=20"`
	PANNumber   *string          `json:"pan_number" binding:"omitempty,max=15"`
	CreditLimit *decimal.Decimal `json:"credit_limit"`
	Notes       *string          `json:"notes"`
}

// CompanyResponse represents a freight company in API responses
type CompanyResponse struct {
	ID          uuid.UUID       `json:"id"`
	TenantID    uuid.UUID       `json:"tenant_id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	ContactName string          `json:"contact_name,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	Email       string          `json:"email,omitempty"`
	Address     string          `json:"address,omitempty"`
	City        string          `json:"city,omitempty"`
	State       string          `json:"state,omitempty"`
	GSTNumber   string          `json:"gst_number,omitempty"`
	PANNumber   string          `json:"pan_number,omitempty"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	Status      string          `json:"status"`
	Notes       string          `json:"notes,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToCompanyResponse converts a domain Company to a response DTO
func ToCompanyResponse(c *partner.Company) CompanyResponse {
	return CompanyResponse{
		ID:          c.ID,
		TenantID:    c.TenantID,
		Code:        c.Code,
		Name:        c.Name,
		ContactName: c.ContactName,
		Phone:       c.Phone,
		Email:       c.Email,
		Address:     c.Address,
		City:        c.City,
		State:       c.State,
		GSTNumber:   c.GSTNumber,
		PANNumber:   c.PANNumber,
		CreditLimit: c.CreditLimit,
		Status:      string(c.Status),
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ==================== Vehicle DTOs ====================

// CreateVehicleRequest represents a request to create a vehicle
type CreateVehicleRequest struct {
	RegistrationNumber string           `json:"registration_number" binding:"required,min=1,max=20"`
	OwnerName          string           `json:"owner_name" binding:"required,min=1,max=200"`
	Type               string           `json:"type" binding:"required,oneof=truck trailer tipper tanker"`
	CapacityTons       *decimal.Decimal `json:"capacity_tons"`
	Phone              string           `json:"phone" binding:"max=50"`
	PANNumber          string           `json:"pan_number" binding:"max=15"`
	BankName           string           `json:"bank_name" binding:"max=200"`
	BankAccount        string           `json:"bank_account" binding:"max=50"`
	IFSCCode           string           `json:"ifsc_code" binding:"max=15"`
	Notes              string           `json:"notes"`
}

// UpdateVehicleRequest represents a partial update to a vehicle
type UpdateVehicleRequest struct {
	OwnerName    *string          `json:"owner_name" binding:"omitempty,min=1,max=200"`
	Type         *string          `json:"type" binding:"omitempty,oneof=truck trailer tipper tanker"`
	CapacityTons *decimal.Decimal `json:"capacity_tons"`
	Phone        *string          `json:"phone" binding:"omitempty,max=50"`
	PANNumber    *string          `json:"pan_number" binding:"omitempty,max=15"`
	BankName     *string          `json:"bank_name" binding:"omitempty,max=200"`
	BankAccount  *string          `json:"bank_account" binding:"omitempty,max=50"`
	IFSCCode     *string          `json:"ifsc_code" binding:"omitempty,max=15"`
	Notes        *string          `json:"notes"`
}

// VehicleResponse represents a vehicle in API responses
type VehicleResponse struct {
	ID                 uuid.UUID       `json:"id"`
	TenantID           uuid.UUID       `json:"tenant_id"`
	RegistrationNumber string          `json:"registration_number"`
	OwnerName          string          `json:"owner_name"`
	Type               string          `json:"type"`
	CapacityTons       decimal.Decimal `json:"capacity_tons"`
	Phone              string          `json:"phone,omitempty"`
	PANNumber          string          `json:"pan_number,omitempty"`
	BankName           string          `json:"bank_name,omitempty"`
	BankAccount        string          `json:"bank_account,omitempty"`
	IFSCCode           string          `json:"ifsc_code,omitempty"`
	Status             string          `json:"status"`
	Notes              string          `json:"notes,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

// ToVehicleResponse converts a domain Vehicle to a response DTO
func ToVehicleResponse(v *partner.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:                 v.ID,
		TenantID:           v.TenantID,
		RegistrationNumber: v.RegistrationNumber,
		OwnerName:          v.OwnerName,
		Type:               string(v.Type),
		CapacityTons:       v.CapacityTons,
		Phone:              v.Phone,
		PANNumber:          v.PANNumber,
		BankName:           v.BankName,
		BankAccount:        v.BankAccount,
		IFSCCode:           v.IFSCCode,
		Status:             string(v.Status),
		Notes:              v.Notes,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

// ==================== Shared list filter ====================

// PartnerListFilter represents filter options shared by the partner lists
type PartnerListFilter struct {
	Search   string  `form:"search"`
	Status   *string `form:"status"`
	Page     int     `form:"page" binding:"omitempty,min=1"`
	PageSize int     `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string  `form:"order_by"`
	OrderDir string  `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}
