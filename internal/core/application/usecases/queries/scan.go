package queries

import (
	"database/sql"

	"livraison/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// scanDeliverySummaries walks a result set of board-row columns. Every
// board query selects the same eight columns in the same order.
func scanDeliverySummaries(rows *sql.Rows) ([]DeliverySummaryResponse, error) {
	summaries := make([]DeliverySummaryResponse, 0)

	for rows.Next() {
		var (
			summary DeliverySummaryResponse
			id      uuid.UUID
		)

		if err := rows.Scan(
			&id,
			&summary.Reference,
			&summary.Status,
			&summary.Priority,
			&summary.ClientName,
			&summary.Address,
			&summary.DriverName,
			&summary.ScheduledAt,
		); err != nil {
			return nil, err
		}

		deliveryID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		summary.ID = deliveryID
		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
