package trip

import (
	"strings"
	"time"

	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartyRole identifies which party in a haul pays or receives money
type PartyRole string

const (
	PartyRoleSupplier PartyRole = "supplier"
	PartyRoleCompany  PartyRole = "company"
	PartyRoleVehicle  PartyRole = "vehicle"
)

// IsValid checks if the role is a valid PartyRole
func (r PartyRole) IsValid() bool {
	switch r {
	case PartyRoleSupplier, PartyRoleCompany, PartyRoleVehicle:
		return true
	}
	return false
}

// String returns the string representation of PartyRole
func (r PartyRole) String() string {
	return string(r)
}

// AdvanceScope tells whether an advance applies to one trip or to the
// tenant's overall ledger
type AdvanceScope string

const (
	AdvanceScopeTrip    AdvanceScope = "trip"
	AdvanceScopeOverall AdvanceScope = "overall"
)

// IsValid checks if the scope is a valid AdvanceScope
func (s AdvanceScope) IsValid() bool {
	return s == AdvanceScopeTrip || s == AdvanceScopeOverall
}

// AdvancePayment records money moving between two parties ahead of
// settlement, either against a specific trip or the overall ledger.
type AdvancePayment struct {
	shared.TenantAggregateRoot
	PayerRole    PartyRole       `gorm:"size:20;not null"`
	ReceiverRole PartyRole       `gorm:"size:20;not null"`
	Amount       decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Scope        AdvanceScope    `gorm:"size:20;not null"`
	TripID       *uuid.UUID      `gorm:"type:uuid;index"`
	PaidOn       time.Time       `gorm:"not null"`
	Note         string          `gorm:"size:500"`
	Deleted      bool            `gorm:"not null;default:false;index"`
	DeletedAt    *time.Time
}

// NewAdvancePayment creates a new advance payment
func NewAdvancePayment(tenantID uuid.UUID, payerRole, receiverRole PartyRole,
	amount decimal.Decimal, scope AdvanceScope, tripID *uuid.UUID,
	paidOn time.Time, note string) (*AdvancePayment, error) {

	if !payerRole.IsValid() {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Invalid payer role")
	}
	if !receiverRole.IsValid() {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Invalid receiver role")
	}
	if payerRole == receiverRole {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Payer and receiver roles must differ")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Advance amount must be positive")
	}
	if !scope.IsValid() {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Invalid advance scope")
	}
	if scope == AdvanceScopeTrip && (tripID == nil || *tripID == uuid.Nil) {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Trip-scoped advances require a trip reference")
	}
	if scope == AdvanceScopeOverall && tripID != nil {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Overall advances cannot reference a trip")
	}
	if paidOn.IsZero() {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Payment date is required")
	}

	a := &AdvancePayment{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		PayerRole:           payerRole,
		ReceiverRole:        receiverRole,
		Amount:              amount,
		Scope:               scope,
		TripID:              tripID,
		PaidOn:              paidOn,
		Note:                strings.TrimSpace(note),
	}

	a.AddDomainEvent(NewAdvancePaymentCreatedEvent(a))
	return a, nil
}

// SetNote updates the free-text note
func (a *AdvancePayment) SetNote(note string) {
	a.Note = strings.TrimSpace(note)
	a.UpdatedAt = time.Now()
}

// SoftDelete marks the advance deleted without removing the record
func (a *AdvancePayment) SoftDelete() error {
	if a.Deleted {
		return shared.NewDomainError("INVALID_STATE", "Advance payment is already deleted")
	}
	now := time.Now()
	a.Deleted = true
	a.DeletedAt = &now
	a.UpdatedAt = now
	return nil
}

// TableName returns the database table name
func (a *AdvancePayment) TableName() string {
	return "advance_payments"
}
