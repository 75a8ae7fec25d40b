package trip

import (
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// RateTable holds the per-ton rates agreed for a trip.
// All rates are non-negative and default to zero.
type RateTable struct {
	CompanyRatePerTon  decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	VehicleRatePerTon  decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	SupplierRatePerTon decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
}

// Validate checks that no rate is negative
func (r RateTable) Validate() error {
	if r.CompanyRatePerTon.IsNegative() {
		return shared.NewDomainError("INVALID_ARGUMENT", "Company rate cannot be negative")
	}
	if r.VehicleRatePerTon.IsNegative() {
		return shared.NewDomainError("INVALID_ARGUMENT", "Vehicle rate cannot be negative")
	}
	if r.SupplierRatePerTon.IsNegative() {
		return shared.NewDomainError("INVALID_ARGUMENT", "Supplier rate cannot be negative")
	}
	return nil
}

// PayerExpenses holds the expense fields charged to a single payer
type PayerExpenses struct {
	Advance decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	Diesel  decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	Toll    decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	Driver  decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	Other   decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
}

// Total returns the sum of all expense fields for this payer
func (p PayerExpenses) Total() decimal.Decimal {
	return p.Advance.Add(p.Diesel).Add(p.Toll).Add(p.Driver).Add(p.Other)
}

// Validate checks that no expense field is negative
func (p PayerExpenses) Validate() error {
	for _, d := range []decimal.Decimal{p.Advance, p.Diesel, p.Toll, p.Driver, p.Other} {
		if d.IsNegative() {
			return shared.NewDomainError("INVALID_ARGUMENT", "Expense fields cannot be negative")
		}
	}
	return nil
}

// ExpenseTable holds the per-trip expenses split by payer
type ExpenseTable struct {
	Company  PayerExpenses `gorm:"embedded;embeddedPrefix:company_"`
	Supplier PayerExpenses `gorm:"embedded;embeddedPrefix:supplier_"`
}

// Total returns the sum of all expense fields across both payers
func (e ExpenseTable) Total() decimal.Decimal {
	return e.Company.Total().Add(e.Supplier.Total())
}

// Validate checks that no expense field is negative
func (e ExpenseTable) Validate() error {
	if err := e.Company.Validate(); err != nil {
		return err
	}
	return e.Supplier.Validate()
}

// Financials is the derived financial snapshot of a trip. It is computed
// from (tonnage, rates, expenses) and persisted alongside them; it is never
// written directly and never trusted from client input.
type Financials struct {
	AmountForCompany  decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	AmountForVehicle  decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	AmountForSupplier decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	Profit            decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
}

// CalculateFinancials derives the financial snapshot for a trip.
// Pure function: no I/O, deterministic, decimal arithmetic throughout.
//
//	amountForCompany  = tonnage * companyRate
//	amountForVehicle  = tonnage * vehicleRate
//	amountForSupplier = tonnage * supplierRate
//	profit            = amountForCompany - amountForVehicle - sum(expenses)
//
// Zero tonnage yields zero amounts and profit = -sum(expenses); a trip that
// never loaded still carries its incurred costs.
func CalculateFinancials(tonnage decimal.Decimal, rates RateTable, expenses ExpenseTable) (Financials, error) {
	if tonnage.IsNegative() {
		return Financials{}, shared.NewDomainError("INVALID_ARGUMENT", "Tonnage cannot be negative")
	}
	if err := rates.Validate(); err != nil {
		return Financials{}, err
	}
	if err := expenses.Validate(); err != nil {
		return Financials{}, err
	}

	amountForCompany := tonnage.Mul(rates.CompanyRatePerTon)
	amountForVehicle := tonnage.Mul(rates.VehicleRatePerTon)
	amountForSupplier := tonnage.Mul(rates.SupplierRatePerTon)
	profit := amountForCompany.Sub(amountForVehicle).Sub(expenses.Total())

	return Financials{
		AmountForCompany:  amountForCompany,
		AmountForVehicle:  amountForVehicle,
		AmountForSupplier: amountForSupplier,
		Profit:            profit,
	}, nil
}
