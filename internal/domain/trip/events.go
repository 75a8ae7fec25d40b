package trip

import (
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constants
const (
	AggregateTypeTrip           = "Trip"
	AggregateTypeAdvancePayment = "AdvancePayment"
)

// Event type constants
const (
	EventTypeTripCreated           = "TripCreated"
	EventTypeTripRecalculated      = "TripRecalculated"
	EventTypeTripStatusChanged     = "TripStatusChanged"
	EventTypeTripDeleted           = "TripDeleted"
	EventTypeAdvancePaymentCreated = "AdvancePaymentCreated"
)

// TripCreatedEvent is published when a new trip is created
type TripCreatedEvent struct {
	shared.BaseDomainEvent
	TripID     uuid.UUID       `json:"trip_id"`
	TripNumber string          `json:"trip_number"`
	SupplierID uuid.UUID       `json:"supplier_id"`
	CompanyID  uuid.UUID       `json:"company_id"`
	VehicleID  uuid.UUID       `json:"vehicle_id"`
	Tonnage    decimal.Decimal `json:"tonnage"`
	Profit     decimal.Decimal `json:"profit"`
}

// NewTripCreatedEvent creates a new TripCreatedEvent
func NewTripCreatedEvent(t *Trip) *TripCreatedEvent {
	return &TripCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTripCreated, AggregateTypeTrip, t.ID, t.TenantID),
		TripID:          t.ID,
		TripNumber:      t.TripNumber,
		SupplierID:      t.SupplierID,
		CompanyID:       t.CompanyID,
		VehicleID:       t.VehicleID,
		Tonnage:         t.Tonnage,
		Profit:          t.Financials.Profit,
	}
}

// TripRecalculatedEvent is published when the financial snapshot is rebuilt
// from stored inputs
type TripRecalculatedEvent struct {
	shared.BaseDomainEvent
	TripID     uuid.UUID       `json:"trip_id"`
	TripNumber string          `json:"trip_number"`
	Profit     decimal.Decimal `json:"profit"`
}

// NewTripRecalculatedEvent creates a new TripRecalculatedEvent
func NewTripRecalculatedEvent(t *Trip) *TripRecalculatedEvent {
	return &TripRecalculatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTripRecalculated, AggregateTypeTrip, t.ID, t.TenantID),
		TripID:          t.ID,
		TripNumber:      t.TripNumber,
		Profit:          t.Financials.Profit,
	}
}

// TripStatusChangedEvent is published when a trip moves through its lifecycle
type TripStatusChangedEvent struct {
	shared.BaseDomainEvent
	TripID     uuid.UUID  `json:"trip_id"`
	TripNumber string     `json:"trip_number"`
	FromStatus TripStatus `json:"from_status"`
	ToStatus   TripStatus `json:"to_status"`
}

// NewTripStatusChangedEvent creates a new TripStatusChangedEvent
func NewTripStatusChangedEvent(t *Trip, from, to TripStatus) *TripStatusChangedEvent {
	return &TripStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTripStatusChanged, AggregateTypeTrip, t.ID, t.TenantID),
		TripID:          t.ID,
		TripNumber:      t.TripNumber,
		FromStatus:      from,
		ToStatus:        to,
	}
}

// TripDeletedEvent is published when a trip is soft-deleted
type TripDeletedEvent struct {
	shared.BaseDomainEvent
	TripID     uuid.UUID `json:"trip_id"`
	TripNumber string    `json:"trip_number"`
}

// NewTripDeletedEvent creates a new TripDeletedEvent
func NewTripDeletedEvent(t *Trip) *TripDeletedEvent {
	return &TripDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTripDeleted, AggregateTypeTrip, t.ID, t.TenantID),
		TripID:          t.ID,
		TripNumber:      t.TripNumber,
	}
}

// AdvancePaymentCreatedEvent is published when an advance payment is recorded
type AdvancePaymentCreatedEvent struct {
	shared.BaseDomainEvent
	AdvanceID    uuid.UUID       `json:"advance_id"`
	PayerRole    PartyRole       `json:"payer_role"`
	ReceiverRole PartyRole       `json:"receiver_role"`
	Amount       decimal.Decimal `json:"amount"`
	TripID       *uuid.UUID      `json:"trip_id,omitempty"`
}

// NewAdvancePaymentCreatedEvent creates a new AdvancePaymentCreatedEvent
func NewAdvancePaymentCreatedEvent(a *AdvancePayment) *AdvancePaymentCreatedEvent {
	return &AdvancePaymentCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeAdvancePaymentCreated, AggregateTypeAdvancePayment, a.ID, a.TenantID),
		AdvanceID:       a.ID,
		PayerRole:       a.PayerRole,
		ReceiverRole:    a.ReceiverRole,
		Amount:          a.Amount,
		TripID:          a.TripID,
	}
}
