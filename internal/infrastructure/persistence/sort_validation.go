package persistence

import (
	"strings"
)

// ValidateSortOrder normalizes the sort order to ASC or DESC.
// Returns "DESC" if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	if strings.EqualFold(strings.TrimSpace(orderDir), "asc") {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed
// columns. Returns defaultField when the input is empty or not whitelisted.
// Sort fields are interpolated into ORDER BY clauses, so anything not in the
// whitelist is rejected outright.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// TripSortFields contains allowed sort fields for trips
var TripSortFields = map[string]bool{
	"id":                  true,
	"created_at":          true,
	"updated_at":          true,
	"trip_number":         true,
	"trip_date":           true,
	"tonnage":             true,
	"status":              true,
	"amount_for_company":  true,
	"amount_for_vehicle":  true,
	"amount_for_supplier": true,
	"profit":              true,
}

// AdvancePaymentSortFields contains allowed sort fields for advance payments
var AdvancePaymentSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"paid_on":    true,
	"amount":     true,
	"payer_role": true,
	"scope":      true,
}

// SupplierSortFields contains allowed sort fields for suppliers
var SupplierSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"name":       true,
	"status":     true,
}

// CompanySortFields contains allowed sort fields for freight companies
var CompanySortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"name":       true,
	"status":     true,
}

// VehicleSortFields contains allowed sort fields for vehicles
var VehicleSortFields = map[string]bool{
	"id":                  true,
	"created_at":          true,
	"updated_at":          true,
	"registration_number": true,
	"owner_name":          true,
	"type":                true,
	"status":              true,
	"capacity_tons":       true,
}
