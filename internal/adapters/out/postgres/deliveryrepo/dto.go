// Package deliveryrepo provides data transfer objects and mapping functions for delivery persistence.
// This package implements the repository pattern for the delivery domain aggregate, handling
// the conversion between domain entities and database representations.
package deliveryrepo

import (
	"time"

	"livraison/internal/core/domain/model/delivery"
	"livraison/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// DeliveryDTO represents the database structure for persisting delivery aggregates.
// Status is stored as its wire string so the compare-and-set update reads
// naturally in SQL and in any ad-hoc query against the table.
type DeliveryDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Reference    string          `gorm:"uniqueIndex"`
	Status       string          `gorm:"index"`
	Priority     string          `gorm:""`
	ClientID     uuid.UUID       `gorm:"type:uuid;index"`
	ClientName   string          `gorm:""`
	Address      string          `gorm:""`
	GeoLat       *float64        `gorm:""`
	GeoLon       *float64        `gorm:""`
	DriverID     *uuid.UUID      `gorm:"type:uuid;index"`
	DriverName   string          `gorm:""`
	ScheduledAt  time.Time       `gorm:"index"`
	StartedAt    *time.Time      `gorm:""`
	DeliveredAt  *time.Time      `gorm:""`
	Photos       pq.StringArray  `gorm:"type:text[]"`
	Signature    string          `gorm:""`
	Notes        string          `gorm:""`
	IncidentNote string          `gorm:""`
	Price        decimal.Decimal `gorm:"type:numeric(12,2)"`
	VatRate      decimal.Decimal `gorm:"type:numeric(5,2)"`
	CreatedBy    uuid.UUID       `gorm:"type:uuid"`
	CreatedAt    time.Time       `gorm:""`
	UpdatedAt    time.Time       `gorm:""`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// ItemDTO represents a single delivery line in its own table.
// Lines are keyed by (delivery_id, position) so their order survives the
// round trip through the database.
type ItemDTO struct {
	DeliveryID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Position   int             `gorm:"primaryKey"`
	Name       string          `gorm:""`
	Reference  string          `gorm:""`
	Qty        int             `gorm:""`
	Unit       string          `gorm:""`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2)"`
	StockID    *uuid.UUID      `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for delivery lines.
func (ItemDTO) TableName() string {
	return "delivery_items"
}

// fromDomain converts a delivery domain aggregate to its database representation,
// returning the delivery row and its line rows separately.
func fromDomain(aggregate *delivery.Delivery) (DeliveryDTO, []ItemDTO) {
	var geoLat, geoLon *float64
	if p := aggregate.Geo(); p != nil {
		lat, lon := p.Lat(), p.Lon()
		geoLat, geoLon = &lat, &lon
	}

	var driverID *uuid.UUID
	if id := aggregate.DriverID(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	dto := DeliveryDTO{
		ID:           aggregate.ID().Bytes(),
		Reference:    aggregate.Reference(),
		Status:       aggregate.Status().String(),
		Priority:     aggregate.Priority().String(),
		ClientID:     aggregate.ClientID().Bytes(),
		ClientName:   aggregate.ClientName(),
		Address:      aggregate.Address(),
		GeoLat:       geoLat,
		GeoLon:       geoLon,
		DriverID:     driverID,
		DriverName:   aggregate.DriverName(),
		ScheduledAt:  aggregate.ScheduledAt(),
		StartedAt:    aggregate.StartedAt(),
		DeliveredAt:  aggregate.DeliveredAt(),
		Photos:       pq.StringArray(aggregate.Photos()),
		Signature:    aggregate.Signature(),
		Notes:        aggregate.Notes(),
		IncidentNote: aggregate.IncidentNote(),
		Price:        aggregate.Price(),
		VatRate:      aggregate.VatRate(),
		CreatedBy:    aggregate.CreatedBy().Bytes(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}

	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for pos, item := range aggregate.Items() {
		var stockID *uuid.UUID
		if id := item.StockID(); id != nil {
			raw := id.Bytes()
			stockID = &raw
		}

		items = append(items, ItemDTO{
			DeliveryID: dto.ID,
			Position:   pos,
			Name:       item.Name(),
			Reference:  item.Reference(),
			Qty:        item.Qty(),
			Unit:       item.Unit(),
			UnitPrice:  item.UnitPrice(),
			StockID:    stockID,
		})
	}

	return dto, items
}

// toDomain converts database rows to a delivery domain aggregate.
// Reconstructs the complete aggregate including status, driver assignment
// and line items using RestoreDelivery, which re-checks the invariants.
func toDomain(dto DeliveryDTO, itemDTOs []ItemDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	priority, err := delivery.PriorityFromString(dto.Priority)
	if err != nil {
		return nil, err
	}

	var geo *kernel.GeoPoint
	if dto.GeoLat != nil && dto.GeoLon != nil {
		p, geoErr := kernel.NewGeoPoint(*dto.GeoLat, *dto.GeoLon)
		if geoErr != nil {
			return nil, geoErr
		}
		geo = &p
	}

	var driverID *kernel.UUID
	if dto.DriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.DriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	items := make([]delivery.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		var stockID *kernel.UUID
		if itemDTO.StockID != nil {
			sID, stockErr := kernel.UUIDFromBytes((*itemDTO.StockID)[:])
			if stockErr != nil {
				return nil, stockErr
			}
			stockID = &sID
		}

		item, itemErr := delivery.NewItem(
			itemDTO.Name, itemDTO.Reference, itemDTO.Qty, itemDTO.Unit, itemDTO.UnitPrice, stockID)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return delivery.RestoreDelivery(delivery.RestoreDeliverySpec{
		ID:           id,
		Reference:    dto.Reference,
		Status:       status,
		Priority:     priority,
		ClientID:     clientID,
		ClientName:   dto.ClientName,
		Address:      dto.Address,
		Geo:          geo,
		DriverID:     driverID,
		DriverName:   dto.DriverName,
		ScheduledAt:  dto.ScheduledAt,
		StartedAt:    dto.StartedAt,
		DeliveredAt:  dto.DeliveredAt,
		Items:        items,
		Photos:       []string(dto.Photos),
		Signature:    dto.Signature,
		Notes:        dto.Notes,
		IncidentNote: dto.IncidentNote,
		Price:        dto.Price,
		VatRate:      dto.VatRate,
		CreatedBy:    createdBy,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	})
}
