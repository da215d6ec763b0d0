package queries

import (
	"context"

	"livraison/internal/core/domain/model/incident"
	"livraison/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUnresolvedIncidentsQueryHandler reads the incident triage queue from
// the database.
type GetUnresolvedIncidentsQueryHandler struct {
	db *gorm.DB
}

// NewGetUnresolvedIncidentsQueryHandler creates a handler for triage queries.
func NewGetUnresolvedIncidentsQueryHandler(db *gorm.DB) GetUnresolvedIncidentsQueryHandler {
	return GetUnresolvedIncidentsQueryHandler{db: db}
}

// Handle executes the triage query. Oldest incidents first: the queue is
// worked front to back.
func (h GetUnresolvedIncidentsQueryHandler) Handle(
	ctx context.Context,
	query GetUnresolvedIncidentsQuery,
) ([]UnresolvedIncidentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	incidents := make([]UnresolvedIncidentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.delivery_id,
			d.reference,
			i.type,
			i.status,
			i.description,
			i.reported_at
		FROM incidents i
		JOIN deliveries d ON d.id = i.delivery_id
		WHERE i.status != ?
		ORDER BY i.reported_at
	`, incident.StatusResolved.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			row        UnresolvedIncidentResponse
			id         uuid.UUID
			deliveryID uuid.UUID
		)

		if err = rows.Scan(
			&id,
			&deliveryID,
			&row.DeliveryReference,
			&row.Type,
			&row.Status,
			&row.Description,
			&row.ReportedAt,
		); err != nil {
			return nil, err
		}

		incidentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = incidentID

		parsedDeliveryID, idErr := kernel.UUIDFromBytes(deliveryID[:])
		if idErr != nil {
			return nil, idErr
		}
		row.DeliveryID = parsedDeliveryID

		incidents = append(incidents, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return incidents, nil
}
