package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/fleetledger/backend/internal/domain/partner"
	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormVehicleRepository implements VehicleRepository using GORM
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GormVehicleRepository
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// FindByIDForTenant finds a vehicle by ID within a tenant
func (r *GormVehicleRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*partner.Vehicle, error) {
	var vehicle partner.Vehicle
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// FindByRegistration finds a vehicle by registration number within a tenant
func (r *GormVehicleRepository) FindByRegistration(ctx context.Context, tenantID uuid.UUID, registrationNumber string) (*partner.Vehicle, error) {
	var vehicle partner.Vehicle
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND registration_number = ?", tenantID, normalizeRegistration(registrationNumber)).
		First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// FindAllForTenant finds all vehicles for a tenant
func (r *GormVehicleRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Vehicle, error) {
	var vehicles []partner.Vehicle
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&partner.Vehicle{}).Where("tenant_id = ?", tenantID),
		filter,
	)
	if err := query.Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// ExistsByRegistration checks if a vehicle with the registration exists in the tenant
func (r *GormVehicleRepository) ExistsByRegistration(ctx context.Context, tenantID uuid.UUID, registrationNumber string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&partner.Vehicle{}).
		Where("tenant_id = ? AND registration_number = ?", tenantID, normalizeRegistration(registrationNumber)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates or updates a vehicle
func (r *GormVehicleRepository) Save(ctx context.Context, vehicle *partner.Vehicle) error {
	return r.db.WithContext(ctx).Save(vehicle).Error
}

// DeleteForTenant deletes a vehicle within a tenant
func (r *GormVehicleRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&partner.Vehicle{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts vehicles for a tenant
func (r *GormVehicleRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&partner.Vehicle{}).Where("tenant_id = ?", tenantID),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// normalizeRegistration matches the normalization applied by the domain model
func normalizeRegistration(registrationNumber string) string {
	return strings.ToUpper(strings.TrimSpace(registrationNumber))
}

func (r *GormVehicleRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, VehicleSortFields, "created_at")
	return query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
}

func (r *GormVehicleRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("registration_number ILIKE ? OR owner_name ILIKE ? OR phone ILIKE ?", pattern, pattern, pattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "type":
			query = query.Where("type = ?", value)
		}
	}
	return query
}

// Ensure GormVehicleRepository implements VehicleRepository
var _ partner.VehicleRepository = (*GormVehicleRepository)(nil)
