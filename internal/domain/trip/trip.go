package trip

import (
	"strings"
	"time"

	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TripStatus represents the lifecycle state of a trip
type TripStatus string

const (
	TripStatusPending   TripStatus = "pending"
	TripStatusRunning   TripStatus = "running"
	TripStatusCompleted TripStatus = "completed"
	TripStatusCancelled TripStatus = "cancelled"
)

// IsValid checks if the status is a valid TripStatus
func (s TripStatus) IsValid() bool {
	switch s {
	case TripStatusPending, TripStatusRunning, TripStatusCompleted, TripStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of TripStatus
func (s TripStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s TripStatus) CanTransitionTo(target TripStatus) bool {
	switch s {
	case TripStatusPending:
		return target == TripStatusRunning || target == TripStatusCancelled
	case TripStatusRunning:
		return target == TripStatusCompleted || target == TripStatusCancelled
	case TripStatusCompleted, TripStatusCancelled:
		return false // Terminal states
	}
	return false
}

// Trip is the central fact record of the system: one haul from a loading
// point to an unloading point, linking a supplier, a freight company and a
// vehicle within one tenant. The derived financial snapshot is owned
// exclusively by this aggregate and is recomputed on every mutation of
// tonnage, rates or expenses.
type Trip struct {
	shared.TenantAggregateRoot
	TripNumber     string `gorm:"size:50;not null;uniqueIndex:idx_trips_tenant_number,where:deleted = false"`
	SupplierID     uuid.UUID
	CompanyID      uuid.UUID
	VehicleID      uuid.UUID
	TripDate       time.Time
	LoadingPoint   string          `gorm:"size:200"`
	UnloadingPoint string          `gorm:"size:200"`
	Tonnage        decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	Rates          RateTable       `gorm:"embedded"`
	Expenses       ExpenseTable    `gorm:"embedded"`
	Financials     Financials      `gorm:"embedded"`
	Status         TripStatus      `gorm:"size:20;not null;default:pending"`
	Active         bool            `gorm:"not null;default:true"`
	Deleted        bool            `gorm:"not null;default:false;index"`
	DeletedAt      *time.Time
	CancelReason   string `gorm:"size:200"`
}

// NewTrip creates a new trip, deriving the financial snapshot from the
// provided inputs. Reference IDs are expected to be validated against the
// tenant by the caller before construction.
func NewTrip(tenantID uuid.UUID, tripNumber string, supplierID, companyID, vehicleID uuid.UUID,
	tripDate time.Time, loadingPoint, unloadingPoint string,
	tonnage decimal.Decimal, rates RateTable, expenses ExpenseTable) (*Trip, error) {

	tripNumber = strings.ToUpper(strings.TrimSpace(tripNumber))
	if err := validateTripNumber(tripNumber); err != nil {
		return nil, err
	}
	if supplierID == uuid.Nil || companyID == uuid.Nil || vehicleID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Supplier, company and vehicle references are required")
	}
	if tripDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Trip date is required")
	}

	financials, err := CalculateFinancials(tonnage, rates, expenses)
	if err != nil {
		return nil, err
	}

	t := &Trip{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		TripNumber:          tripNumber,
		SupplierID:          supplierID,
		CompanyID:           companyID,
		VehicleID:           vehicleID,
		TripDate:            tripDate,
		LoadingPoint:        strings.TrimSpace(loadingPoint),
		UnloadingPoint:      strings.TrimSpace(unloadingPoint),
		Tonnage:             tonnage,
		Rates:               rates,
		Expenses:            expenses,
		Financials:          financials,
		Status:              TripStatusPending,
		Active:              true,
	}

	t.AddDomainEvent(NewTripCreatedEvent(t))
	return t, nil
}

func validateTripNumber(tripNumber string) error {
	if tripNumber == "" {
		return shared.NewDomainError("INVALID_ARGUMENT", "Trip number cannot be empty")
	}
	if len(tripNumber) > 50 {
		return shared.NewDomainError("INVALID_ARGUMENT", "Trip number cannot exceed 50 characters")
	}
	return nil
}

// SetTonnage updates the tonnage and recomputes the financial snapshot
func (t *Trip) SetTonnage(tonnage decimal.Decimal) error {
	financials, err := CalculateFinancials(tonnage, t.Rates, t.Expenses)
	if err != nil {
		return err
	}
	t.Tonnage = tonnage
	t.Financials = financials
	t.touch()
	return nil
}

// SetRates updates the rate table and recomputes the financial snapshot
func (t *Trip) SetRates(rates RateTable) error {
	financials, err := CalculateFinancials(t.Tonnage, rates, t.Expenses)
	if err != nil {
		return err
	}
	t.Rates = rates
	t.Financials = financials
	t.touch()
	return nil
}

// SetExpenses updates the expense table and recomputes the financial snapshot
func (t *Trip) SetExpenses(expenses ExpenseTable) error {
	financials, err := CalculateFinancials(t.Tonnage, t.Rates, expenses)
	if err != nil {
		return err
	}
	t.Expenses = expenses
	t.Financials = financials
	t.touch()
	return nil
}

// SetRoute updates the loading and unloading points
func (t *Trip) SetRoute(loadingPoint, unloadingPoint string) {
	t.LoadingPoint = strings.TrimSpace(loadingPoint)
	t.UnloadingPoint = strings.TrimSpace(unloadingPoint)
	t.touch()
}

// SetTripDate updates the trip date
func (t *Trip) SetTripDate(tripDate time.Time) error {
	if tripDate.IsZero() {
		return shared.NewDomainError("INVALID_ARGUMENT", "Trip date is required")
	}
	t.TripDate = tripDate
	t.touch()
	return nil
}

// Recalculate re-runs the financial derivation against the currently stored
// inputs. Used for backfill and repair; returns the recomputed profit.
func (t *Trip) Recalculate() (decimal.Decimal, error) {
	financials, err := CalculateFinancials(t.Tonnage, t.Rates, t.Expenses)
	if err != nil {
		return decimal.Zero, err
	}
	t.Financials = financials
	t.touch()
	t.AddDomainEvent(NewTripRecalculatedEvent(t))
	return financials.Profit, nil
}

// Start moves the trip from pending to running
func (t *Trip) Start() error {
	return t.transitionTo(TripStatusRunning)
}

// Complete moves the trip from running to completed
func (t *Trip) Complete() error {
	return t.transitionTo(TripStatusCompleted)
}

// Cancel cancels a trip that has not reached a terminal state
func (t *Trip) Cancel(reason string) error {
	if err := t.transitionTo(TripStatusCancelled); err != nil {
		return err
	}
	t.CancelReason = strings.TrimSpace(reason)
	return nil
}

func (t *Trip) transitionTo(target TripStatus) error {
	if !t.Status.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE",
			"Cannot transition trip from "+t.Status.String()+" to "+target.String())
	}
	from := t.Status
	t.Status = target
	t.touch()
	t.AddDomainEvent(NewTripStatusChangedEvent(t, from, target))
	return nil
}

// SoftDelete marks the trip deleted without removing the record.
// Deleted trips are excluded from reads and report totals by default.
func (t *Trip) SoftDelete() error {
	if t.Deleted {
		return shared.NewDomainError("INVALID_STATE", "Trip is already deleted")
	}
	now := time.Now()
	t.Deleted = true
	t.DeletedAt = &now
	t.Active = false
	t.touch()
	t.AddDomainEvent(NewTripDeletedEvent(t))
	return nil
}

func (t *Trip) touch() {
	t.UpdatedAt = time.Now()
}

// TableName returns the database table name
func (t *Trip) TableName() string {
	return "trips"
}
