package persistence

import (
	"context"
	"errors"

	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/fleetledger/backend/internal/domain/trip"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAdvancePaymentRepository implements AdvancePaymentRepository using GORM
type GormAdvancePaymentRepository struct {
	db *gorm.DB
}

// NewGormAdvancePaymentRepository creates a new GormAdvancePaymentRepository
func NewGormAdvancePaymentRepository(db *gorm.DB) *GormAdvancePaymentRepository {
	return &GormAdvancePaymentRepository{db: db}
}

// FindByIDForTenant finds a non-deleted advance by ID within a tenant
func (r *GormAdvancePaymentRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*trip.AdvancePayment, error) {
	var advance trip.AdvancePayment
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ? AND deleted = false", tenantID, id).
		First(&advance).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &advance, nil
}

// FindAllForTenant finds all non-deleted advances for a tenant
func (r *GormAdvancePaymentRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]trip.AdvancePayment, error) {
	var advances []trip.AdvancePayment
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&trip.AdvancePayment{}).Where("tenant_id = ? AND deleted = false", tenantID),
		filter,
	)
	if err := query.Find(&advances).Error; err != nil {
		return nil, err
	}
	return advances, nil
}

// FindByTrip finds all non-deleted advances linked to a trip
func (r *GormAdvancePaymentRepository) FindByTrip(ctx context.Context, tenantID, tripID uuid.UUID) ([]trip.AdvancePayment, error) {
	var advances []trip.AdvancePayment
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND trip_id = ? AND deleted = false", tenantID, tripID).
		Order("paid_on ASC").
		Find(&advances).Error; err != nil {
		return nil, err
	}
	return advances, nil
}

// Save creates or updates an advance payment
func (r *GormAdvancePaymentRepository) Save(ctx context.Context, advance *trip.AdvancePayment) error {
	return r.db.WithContext(ctx).Save(advance).Error
}

// CountForTenant counts non-deleted advances for a tenant
func (r *GormAdvancePaymentRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&trip.AdvancePayment{}).Where("tenant_id = ? AND deleted = false", tenantID),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormAdvancePaymentRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, AdvancePaymentSortFields, "paid_on")
	return query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
}

func (r *GormAdvancePaymentRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "trip_id":
			query = query.Where("trip_id = ?", value)
		case "payer_role":
			query = query.Where("payer_role = ?", value)
		case "receiver_role":
			query = query.Where("receiver_role = ?", value)
		case "scope":
			query = query.Where("scope = ?", value)
		case "start_date":
			query = query.Where("paid_on >= ?", value)
		case "end_date":
			query = query.Where("paid_on <= ?", value)
		}
	}
	return query
}

// Ensure GormAdvancePaymentRepository implements AdvancePaymentRepository
var _ trip.AdvancePaymentRepository = (*GormAdvancePaymentRepository)(nil)
