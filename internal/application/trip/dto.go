package trip

import (
	"time"

	"github.com/fleetledger/backend/internal/domain/trip"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ==================== Trip DTOs ====================

// RateTableInput carries the per-ton rates of a create/update request
type RateTableInput struct {
	CompanyRatePerTon  decimal.Decimal `json:"company_rate_per_ton"`
	VehicleRatePerTon  decimal.Decimal `json:"vehicle_rate_per_ton"`
	SupplierRatePerTon decimal.Decimal `json:"supplier_rate_per_ton"`
}

func (r RateTableInput) toDomain() trip.RateTable {
	return trip.RateTable{
		CompanyRatePerTon:  r.CompanyRatePerTon,
		VehicleRatePerTon:  r.VehicleRatePerTon,
		SupplierRatePerTon: r.SupplierRatePerTon,
	}
}

// PayerExpensesInput carries one payer's expense fields
type PayerExpensesInput struct {
	Advance decimal.Decimal `json:"advance"`
	Diesel  decimal.Decimal `json:"diesel"`
	Toll    decimal.Decimal `json:"toll"`
	Driver  decimal.Decimal `json:"driver"`
	Other   decimal.Decimal `json:"other"`
}

func (p PayerExpensesInput) toDomain() trip.PayerExpenses {
	return trip.PayerExpenses{
		Advance: p.Advance,
		Diesel:  p.Diesel,
		Toll:    p.Toll,
		Driver:  p.Driver,
		Other:   p.Other,
	}
}

// ExpenseTableInput carries the payer-split expenses of a create/update request
type ExpenseTableInput struct {
	Company  PayerExpensesInput `json:"company"`
	Supplier PayerExpensesInput `json:"supplier"`
}

func (e ExpenseTableInput) toDomain() trip.ExpenseTable {
	return trip.ExpenseTable{
		Company:  e.Company.toDomain(),
		Supplier: e.Supplier.toDomain(),
	}
}

// CreateTripRequest represents a request to create a trip
type CreateTripRequest struct {
	TripNumber     string             `json:"trip_number" binding:"required,min=1,max=50"`
	SupplierID     uuid.UUID          `json:"supplier_id" binding:"required"`
	CompanyID      uuid.UUID          `json:"company_id" binding:"required"`
	VehicleID      uuid.UUID          `json:"vehicle_id" binding:"required"`
	TripDate       time.Time          `json:"trip_date" binding:"required"`
	LoadingPoint   string             `json:"loading_point" binding:"max=200"`
	UnloadingPoint string             `json:"unloading_point" binding:"max=200"`
	Tonnage        decimal.Decimal    `json:"tonnage"`
	Rates          RateTableInput     `json:"rates"`
	Expenses       ExpenseTableInput  `json:"expenses"`
}

// UpdateTripRequest represents a partial update to a trip. Only set fields
// are merged; any change to tonnage, rates or expenses triggers a full
// recomputation of the financial snapshot.
type UpdateTripRequest struct {
	TripDate       *time.Time         `json:"trip_date"`
	LoadingPoint   *string            `json:"loading_point"`
	UnloadingPoint *string            `json:"unloading_point"`
	Tonnage        *decimal.Decimal   `json:"tonnage"`
	Rates          *RateTableInput    `json:"rates"`
	Expenses       *ExpenseTableInput `json:"expenses"`
	// Version enables compare-and-swap against the record the client last
	// read; a mismatch rejects the update instead of clobbering it.
	Version *int `json:"version"`
}

// CancelTripRequest represents a request to cancel a trip
type CancelTripRequest struct {
	Reason string `json:"reason" binding:"max=200"`
}

// TripListFilter represents filter options for the trip list
type TripListFilter struct {
	Search     string           `form:"search"`
	SupplierID *uuid.UUID       `form:"supplier_id"`
	CompanyID  *uuid.UUID       `form:"company_id"`
	VehicleID  *uuid.UUID       `form:"vehicle_id"`
	Status     *trip.TripStatus `form:"status"`
	StartDate  *time.Time       `form:"start_date" time_format:"2006-01-02"`
	EndDate    *time.Time       `form:"end_date" time_format:"2006-01-02"`
	Page       int              `form:"page" binding:"omitempty,min=1"`
	PageSize   int              `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string           `form:"order_by"`
	OrderDir   string           `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// FinancialsResponse is the derived snapshot in API responses
type FinancialsResponse struct {
	AmountForCompany  decimal.Decimal `json:"amount_for_company"`
	AmountForVehicle  decimal.Decimal `json:"amount_for_vehicle"`
	AmountForSupplier decimal.Decimal `json:"amount_for_supplier"`
	Profit            decimal.Decimal `json:"profit"`
}

// TripResponse represents a trip in API responses
type TripResponse struct {
	ID             uuid.UUID          `json:"id"`
	TenantID       uuid.UUID          `json:"tenant_id"`
	TripNumber     string             `json:"trip_number"`
	SupplierID     uuid.UUID          `json:"supplier_id"`
	CompanyID      uuid.UUID          `json:"company_id"`
	VehicleID      uuid.UUID          `json:"vehicle_id"`
	TripDate       time.Time          `json:"trip_date"`
	LoadingPoint   string             `json:"loading_point"`
	UnloadingPoint string             `json:"unloading_point"`
	Tonnage        decimal.Decimal    `json:"tonnage"`
	Rates          RateTableInput     `json:"rates"`
	Expenses       ExpenseTableInput  `json:"expenses"`
	Financials     FinancialsResponse `json:"financials"`
	Status         string             `json:"status"`
	Active         bool               `json:"active"`
	CancelReason   string             `json:"cancel_reason,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
	UpdatedAt      time.Time          `json:"updated_at"`
	Version        int                `json:"version"`
}

// ToTripResponse converts a domain Trip to a response DTO
func ToTripResponse(t *trip.Trip) TripResponse {
	return TripResponse{
		ID:             t.ID,
		TenantID:       t.TenantID,
		TripNumber:     t.TripNumber,
		SupplierID:     t.SupplierID,
		CompanyID:      t.CompanyID,
		VehicleID:      t.VehicleID,
		TripDate:       t.TripDate,
		LoadingPoint:   t.LoadingPoint,
		UnloadingPoint: t.UnloadingPoint,
		Tonnage:        t.Tonnage,
		Rates: RateTableInput{
			CompanyRatePerTon:  t.Rates.CompanyRatePerTon,
			VehicleRatePerTon:  t.Rates.VehicleRatePerTon,
			SupplierRatePerTon: t.Rates.SupplierRatePerTon,
		},
		Expenses: ExpenseTableInput{
			Company:  toPayerExpensesInput(t.Expenses.Company),
			Supplier: toPayerExpensesInput(t.Expenses.Supplier),
		},
		Financials: FinancialsResponse{
			AmountForCompany:  t.Financials.AmountForCompany,
			AmountForVehicle:  t.Financials.AmountForVehicle,
			AmountForSupplier: t.Financials.AmountForSupplier,
			Profit:            t.Financials.Profit,
		},
		Status:       string(t.Status),
		Active:       t.Active,
		CancelReason: t.CancelReason,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
		Version:      t.Version,
	}
}

func toPayerExpensesInput(p trip.PayerExpenses) PayerExpensesInput {
	return PayerExpensesInput{
		Advance: p.Advance,
		Diesel:  p.Diesel,
		Toll:    p.Toll,
		Driver:  p.Driver,
		Other:   p.Other,
	}
}

// RecalculateResponse is returned by the explicit recalculation operation
type RecalculateResponse struct {
	TripID uuid.UUID       `json:"trip_id"`
	Profit decimal.Decimal `json:"profit"`
}

// ==================== Advance Payment DTOs ====================

// CreateAdvancePaymentRequest represents a request to record an advance
type CreateAdvancePaymentRequest struct {
	PayerRole    string          `json:"payer_role" binding:"required,oneof=supplier company vehicle"`
	ReceiverRole string          `json:"receiver_role" binding:"required,oneof=supplier company vehicle"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	Scope        string          `json:"scope" binding:"required,oneof=trip overall"`
	TripID       *uuid.UUID      `json:"trip_id"`
	PaidOn       time.Time       `json:"paid_on" binding:"required"`
	Note         string          `json:"note" binding:"max=500"`
}

// AdvancePaymentListFilter represents filter options for the advance list
type AdvancePaymentListFilter struct {
	TripID    *uuid.UUID `form:"trip_id"`
	PayerRole *string    `form:"payer_role"`
	Scope     *string    `form:"scope"`
	StartDate *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"end_date" time_format:"2006-01-02"`
	Page      int        `form:"page" binding:"omitempty,min=1"`
	PageSize  int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy   string     `form:"order_by"`
	OrderDir  string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// AdvancePaymentResponse represents an advance payment in API responses
type AdvancePaymentResponse struct {
	ID           uuid.UUID       `json:"id"`
	TenantID     uuid.UUID       `json:"tenant_id"`
	PayerRole    string          `json:"payer_role"`
	ReceiverRole string          `json:"receiver_role"`
	Amount       decimal.Decimal `json:"amount"`
	Scope        string          `json:"scope"`
	TripID       *uuid.UUID      `json:"trip_id,omitempty"`
	PaidOn       time.Time       `json:"paid_on"`
	Note         string          `json:"note,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToAdvancePaymentResponse converts a domain AdvancePayment to a response DTO
func ToAdvancePaymentResponse(a *trip.AdvancePayment) AdvancePaymentResponse {
	return AdvancePaymentResponse{
		ID:           a.ID,
		TenantID:     a.TenantID,
		PayerRole:    string(a.PayerRole),
		ReceiverRole: string(a.ReceiverRole),
		Amount:       a.Amount,
		Scope:        string(a.Scope),
		TripID:       a.TripID,
		PaidOn:       a.PaidOn,
		Note:         a.Note,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}
