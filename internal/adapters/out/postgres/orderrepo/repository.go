package orderrepo

import (
	"context"
	"errors"
	"time"

	"parcel/internal/core/domain/model/order"
	"parcel/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// settledStatuses are the statuses the closing sweep picks up.
var settledStatuses = []int{
	int(order.Delivered),
	int(order.Exception),
	int(order.Canceled),
}

// Add inserts a new order and returns the aggregate rebuilt around its
// store-assigned id.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.DeliveryOrder) (*order.DeliveryOrder, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, err
	}

	persisted, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(persisted.ID(), persisted)
	return persisted, nil
}

// Update saves an existing order to the database.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.DeliveryOrder) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("orderId", dto.ID)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a live order by id. Soft-deleted orders are invisible on
// this path.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.DeliveryOrder, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ? AND is_deleted = false", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAny retrieves an order by id regardless of its soft-delete mark.
// The assignment path reads through this lookup.
func (r *GormOrderRepository) GetAny(ctx context.Context, id int64) (*order.DeliveryOrder, error) {
	var dto OrderDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllSettledBefore retrieves live settled orders last modified before the
// cutoff, oldest first.
func (r *GormOrderRepository) GetAllSettledBefore(ctx context.Context, cutoff time.Time) ([]*order.DeliveryOrder, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status IN ? AND is_deleted = false AND modified_at < ?", settledStatuses, cutoff).
		Order("modified_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllBySender retrieves all live orders created by one sender, newest
// first, matching the ordering of the sender listing read model.
func (r *GormOrderRepository) GetAllBySender(ctx context.Context, senderID int64) ([]*order.DeliveryOrder, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("sender_id = ? AND is_deleted = false", senderID).
		Order("modified_at DESC, id DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []OrderDTO) ([]*order.DeliveryOrder, error) {
	orders := make([]*order.DeliveryOrder, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
