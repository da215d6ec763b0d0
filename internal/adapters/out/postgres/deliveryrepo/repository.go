package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"livraison/internal/core/domain/model/delivery"
	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the postgres error code for duplicate keys.
const uniqueViolation = "23505"

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery and its line items to the database.
// A duplicate reference surfaces as a ValueIsInvalidError rather than a raw
// driver error so callers can map it to a client fault.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, items := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return errs.NewValueIsInvalidErrorWithCause("reference", err)
		}
		return err
	}

	if len(items) > 0 {
		if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery guarded by a compare-and-set on status.
// The write only lands when the stored status still equals expectedStatus;
// otherwise the row has been moved by a concurrent transition and a
// VersionConflictError is returned. Line items are rewritten wholesale
// because photos aside they never change after creation.
func (r *GormDeliveryRepository) Update(
	ctx context.Context,
	aggregate *delivery.Delivery,
	expectedStatus delivery.Status,
) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := expectedStatus.Validate(); err != nil {
		return err
	}

	dto, items := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ? AND status = ?", dto.ID, expectedStatus.String()).
		Select("*").
		Omit("id", "created_at", "created_by").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		// Zero rows means either a lost race on status or a missing row;
		// a second lookup tells the two apart.
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&DeliveryDTO{}).
			Where("id = ?", dto.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("delivery", aggregate.ID().String())
		}
		return errs.NewVersionConflictError("delivery", aggregate.ID().String())
	}

	if err := r.db.WithContext(ctx).
		Where("delivery_id = ?", dto.ID).
		Delete(&ItemDTO{}).Error; err != nil {
		return err
	}
	if len(items) > 0 {
		if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery by ID.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	items, err := r.itemsFor(ctx, dto)
	if err != nil {
		return nil, err
	}

	return toDomain(dto, items)
}

// GetAllActive retrieves every delivery not yet terminal, urgent first and
// then by scheduled date.
func (r *GormDeliveryRepository) GetAllActive(ctx context.Context) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).
		Where("status NOT IN ?", terminalStatuses()).
		Order("CASE WHEN priority = 'urgent' THEN 0 ELSE 1 END, scheduled_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(ctx, dtos)
}

// GetAllByDriver retrieves the non-terminal deliveries committed to the
// given driver.
func (r *GormDeliveryRepository) GetAllByDriver(
	ctx context.Context,
	driverID kernel.UUID,
) ([]*delivery.Delivery, error) {
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).
		Where("driver_id = ? AND status NOT IN ?", driverID.Bytes(), terminalStatuses()).
		Order("scheduled_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(ctx, dtos)
}

// GetAllOverdue retrieves non-terminal deliveries scheduled before the given
// instant, oldest first.
func (r *GormDeliveryRepository) GetAllOverdue(
	ctx context.Context,
	before time.Time,
) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	if err := r.db.WithContext(ctx).
		Where("scheduled_at < ? AND status NOT IN ?", before, terminalStatuses()).
		Order("scheduled_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(ctx, dtos)
}

func (r *GormDeliveryRepository) itemsFor(ctx context.Context, dto DeliveryDTO) ([]ItemDTO, error) {
	var items []ItemDTO
	if err := r.db.WithContext(ctx).
		Where("delivery_id = ?", dto.ID).
		Order("position").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormDeliveryRepository) toDomainAll(
	ctx context.Context,
	dtos []DeliveryDTO,
) ([]*delivery.Delivery, error) {
	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		items, err := r.itemsFor(ctx, dto)
		if err != nil {
			return nil, err
		}

		d, err := toDomain(dto, items)
		if err != nil {
			return nil, err
		}
		deliveries = append(deliveries, d)
	}

	return deliveries, nil
}

func terminalStatuses() []string {
	return []string{delivery.StatusDelivered.String(), delivery.StatusCancelled.String()}
}
