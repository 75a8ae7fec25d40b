package report

import (
	"github.com/shopspring/decimal"
)

// Settlement is the outstanding-balance view for one tenant and period.
// It is computed on demand and never persisted.
type Settlement struct {
	TripTotal    decimal.Decimal
	AdvanceTotal decimal.Decimal
	Balance      decimal.Decimal
}

// CalculateSettlement computes the outstanding balance between what trips
// owe and what has already been advanced. Pure function: same inputs always
// yield the same output. A negative balance means the tenant has been
// overpaid and owes nothing further.
func CalculateSettlement(tripTotal, advanceTotal decimal.Decimal) Settlement {
	return Settlement{
		TripTotal:    tripTotal,
		AdvanceTotal: advanceTotal,
		Balance:      tripTotal.Sub(advanceTotal),
	}
}

// SettleCollections computes a settlement over already-fetched amount
// collections for one tenant and period.
func SettleCollections(tripAmounts, advanceAmounts []decimal.Decimal) Settlement {
	tripTotal := decimal.Zero
	for _, a := range tripAmounts {
		tripTotal = tripTotal.Add(a)
	}
	advanceTotal := decimal.Zero
	for _, a := range advanceAmounts {
		advanceTotal = advanceTotal.Add(a)
	}
	return CalculateSettlement(tripTotal, advanceTotal)
}
