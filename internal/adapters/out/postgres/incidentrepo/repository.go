package incidentrepo

import (
	"context"
	"errors"

	"livraison/internal/core/domain/model/incident"
	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormIncidentRepository implements IncidentRepository using GORM.
type GormIncidentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormIncidentRepository creates a new GORM incident repository.
func NewGormIncidentRepository(db *gorm.DB, tracker aggregateTracker) *GormIncidentRepository {
	return &GormIncidentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new incident to the database.
func (r *GormIncidentRepository) Add(ctx context.Context, aggregate *incident.Incident) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing incident to the database.
func (r *GormIncidentRepository) Update(ctx context.Context, aggregate *incident.Incident) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&IncidentDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "delivery_id", "reported_by", "reported_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("incident", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an incident by ID.
func (r *GormIncidentRepository) Get(ctx context.Context, id kernel.UUID) (*incident.Incident, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto IncidentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("incident", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllUnresolved retrieves incidents still open or in review, oldest first.
func (r *GormIncidentRepository) GetAllUnresolved(ctx context.Context) ([]*incident.Incident, error) {
	var dtos []IncidentDTO
	if err := r.db.WithContext(ctx).
		Where("status <> ?", incident.StatusResolved.String()).
		Order("reported_at").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllByDelivery retrieves every incident reported against the given
// delivery, newest first.
func (r *GormIncidentRepository) GetAllByDelivery(
	ctx context.Context,
	deliveryID kernel.UUID,
) ([]*incident.Incident, error) {
	if err := deliveryID.Validate(); err != nil {
		return nil, err
	}

	var dtos []IncidentDTO
	if err := r.db.WithContext(ctx).
		Where("delivery_id = ?", deliveryID.Bytes()).
		Order("reported_at DESC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []IncidentDTO) ([]*incident.Incident, error) {
	incidents := make([]*incident.Incident, 0, len(dtos))
	for _, dto := range dtos {
		i, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		incidents = append(incidents, i)
	}

	return incidents, nil
}
