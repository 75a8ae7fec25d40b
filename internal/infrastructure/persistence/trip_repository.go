package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/fleetledger/backend/internal/domain/trip"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTripRepository implements TripRepository using GORM
type GormTripRepository struct {
	db *gorm.DB
}

// NewGormTripRepository creates a new GormTripRepository
func NewGormTripRepository(db *gorm.DB) *GormTripRepository {
	return &GormTripRepository{db: db}
}

// FindByIDForTenant finds a non-deleted trip by ID within a tenant
func (r *GormTripRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*trip.Trip, error) {
	var t trip.Trip
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ? AND deleted = false", tenantID, id).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// FindByTripNumber finds a non-deleted trip by its number within a tenant
func (r *GormTripRepository) FindByTripNumber(ctx context.Context, tenantID uuid.UUID, tripNumber string) (*trip.Trip, error) {
	var t trip.Trip
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND trip_number = ? AND deleted = false", tenantID, strings.ToUpper(strings.TrimSpace(tripNumber))).
		First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// FindAllForTenant finds all non-deleted trips for a tenant
func (r *GormTripRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]trip.Trip, error) {
	var trips []trip.Trip
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&trip.Trip{}).Where("tenant_id = ? AND deleted = false", tenantID),
		filter,
	)
	if err := query.Find(&trips).Error; err != nil {
		return nil, err
	}
	return trips, nil
}

// ExistsByTripNumber checks if a non-deleted trip with the number exists in the tenant
func (r *GormTripRepository) ExistsByTripNumber(ctx context.Context, tenantID uuid.UUID, tripNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&trip.Trip{}).
		Where("tenant_id = ? AND trip_number = ? AND deleted = false", tenantID, strings.ToUpper(strings.TrimSpace(tripNumber))).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a trip
func (r *GormTripRepository) Save(ctx context.Context, t *trip.Trip) error {
	return r.db.WithContext(ctx).Save(t).Error
}

// SaveWithLock updates a trip with an optimistic-concurrency version check.
// The stored version must still match the version the aggregate was loaded
// with; on success the version advances by one.
func (r *GormTripRepository) SaveWithLock(ctx context.Context, t *trip.Trip) error {
	currentVersion := t.Version
	t.IncrementVersion()

	result := r.db.WithContext(ctx).
		Model(t).
		Where("id = ? AND tenant_id = ? AND version = ?", t.ID, t.TenantID, currentVersion).
		Select("*").
		Omit("created_at").
		Updates(t)

	if result.Error != nil {
		t.Version = currentVersion
		return result.Error
	}
	if result.RowsAffected == 0 {
		t.Version = currentVersion
		return shared.NewDomainError("CONCURRENT_MODIFICATION", "Trip has been modified by another request")
	}
	return nil
}

// CountForTenant counts non-deleted trips for a tenant
func (r *GormTripRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&trip.Trip{}).Where("tenant_id = ? AND deleted = false", tenantID),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormTripRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, TripSortFields, "trip_date")
	return query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
}

func (r *GormTripRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("trip_number ILIKE ? OR loading_point ILIKE ? OR unloading_point ILIKE ?",
			pattern, pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "supplier_id":
			query = query.Where("supplier_id = ?", value)
		case "company_id":
			query = query.Where("company_id = ?", value)
		case "vehicle_id":
			query = query.Where("vehicle_id = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "start_date":
			query = query.Where("trip_date >= ?", value)
		case "end_date":
			query = query.Where("trip_date <= ?", value)
		}
	}
	return query
}

// Ensure GormTripRepository implements TripRepository
var _ trip.TripRepository = (*GormTripRepository)(nil)
