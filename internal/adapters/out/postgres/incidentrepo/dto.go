// Package incidentrepo provides data transfer objects and mapping functions for incident persistence.
package incidentrepo

import (
	"time"

	"livraison/internal/core/domain/model/incident"
	"livraison/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// IncidentDTO represents the database structure for persisting incident records.
// Type and status are stored as their wire strings.
type IncidentDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DeliveryID  uuid.UUID  `gorm:"type:uuid;index"`
	Type        string     `gorm:""`
	Status      string     `gorm:"index"`
	Description string     `gorm:""`
	ReportedBy  uuid.UUID  `gorm:"type:uuid"`
	ReportedAt  time.Time  `gorm:"index"`
	ResolvedBy  *uuid.UUID `gorm:"type:uuid"`
	ResolvedAt  *time.Time `gorm:""`
	Resolution  string     `gorm:""`
}

// TableName specifies the database table name for incident records.
func (IncidentDTO) TableName() string {
	return "incidents"
}

// fromDomain converts an incident aggregate to its database representation.
func fromDomain(aggregate *incident.Incident) IncidentDTO {
	var resolvedBy *uuid.UUID
	if id := aggregate.ResolvedBy(); id != nil {
		raw := id.Bytes()
		resolvedBy = &raw
	}

	return IncidentDTO{
		ID:          aggregate.ID().Bytes(),
		DeliveryID:  aggregate.DeliveryID().Bytes(),
		Type:        aggregate.Type().String(),
		Status:      aggregate.Status().String(),
		Description: aggregate.Description(),
		ReportedBy:  aggregate.ReportedBy().Bytes(),
		ReportedAt:  aggregate.ReportedAt(),
		ResolvedBy:  resolvedBy,
		ResolvedAt:  aggregate.ResolvedAt(),
		Resolution:  aggregate.Resolution(),
	}
}

// toDomain converts a database DTO to an incident aggregate using RestoreIncident.
func toDomain(dto IncidentDTO) (*incident.Incident, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveryID, err := kernel.UUIDFromBytes(dto.DeliveryID[:])
	if err != nil {
		return nil, err
	}

	reportedBy, err := kernel.UUIDFromBytes(dto.ReportedBy[:])
	if err != nil {
		return nil, err
	}

	incidentType, err := incident.TypeFromString(dto.Type)
	if err != nil {
		return nil, err
	}

	status, err := incident.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var resolvedBy *kernel.UUID
	if dto.ResolvedBy != nil {
		rID, resolvedErr := kernel.UUIDFromBytes((*dto.ResolvedBy)[:])
		if resolvedErr != nil {
			return nil, resolvedErr
		}
		resolvedBy = &rID
	}

	return incident.RestoreIncident(incident.RestoreIncidentSpec{
		ID:          id,
		DeliveryID:  deliveryID,
		Type:        incidentType,
		Status:      status,
		Description: dto.Description,
		ReportedBy:  reportedBy,
		ReportedAt:  dto.ReportedAt,
		ResolvedBy:  resolvedBy,
		ResolvedAt:  dto.ResolvedAt,
		Resolution:  dto.Resolution,
	})
}
