package ports

import (
	"context"
	"time"

	"livraison/internal/core/domain/model/delivery"
	"livraison/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// DeliverySnapshot is the full state of a delivery at the moment a change
// was committed. It is a value copy: subscribers consume it asynchronously
// and must never observe later mutations of the aggregate.
type DeliverySnapshot struct {
	Status       delivery.Status
	Priority     delivery.Priority
	ClientID     kernel.UUID
	ClientName   string
	Address      string
	Geo          *kernel.GeoPoint
	DriverID     *kernel.UUID
	DriverName   string
	ScheduledAt  time.Time
	StartedAt    *time.Time
	DeliveredAt  *time.Time
	Photos       []string
	Signature    string
	Notes        string
	IncidentNote string
	Price        decimal.Decimal
	VatRate      decimal.Decimal
	UpdatedAt    time.Time
}

// SnapshotOf captures the delivery's current state for publication.
func SnapshotOf(d *delivery.Delivery) DeliverySnapshot {
	snapshot := DeliverySnapshot{
		Status:       d.Status(),
		Priority:     d.Priority(),
		ClientID:     d.ClientID(),
		ClientName:   d.ClientName(),
		Address:      d.Address(),
		DriverName:   d.DriverName(),
		ScheduledAt:  d.ScheduledAt(),
		Photos:       append([]string(nil), d.Photos()...),
		Signature:    d.Signature(),
		Notes:        d.Notes(),
		IncidentNote: d.IncidentNote(),
		Price:        d.Price(),
		VatRate:      d.VatRate(),
		UpdatedAt:    d.UpdatedAt(),
	}
	if geo := d.Geo(); geo != nil {
		g := *geo
		snapshot.Geo = &g
	}
	if driverID := d.DriverID(); driverID != nil {
		id := *driverID
		snapshot.DriverID = &id
	}
	if startedAt := d.StartedAt(); startedAt != nil {
		ts := *startedAt
		snapshot.StartedAt = &ts
	}
	if deliveredAt := d.DeliveredAt(); deliveredAt != nil {
		ts := *deliveredAt
		snapshot.DeliveredAt = &ts
	}
	return snapshot
}

// DeliveryChange is one committed lifecycle transition, as seen by the
// change feed. Seq is assigned by the publisher and is strictly increasing
// in publish order, so consumers can detect gaps and reorder-free replay is
// possible. Snapshot carries the post-transition state so subscribers can
// render the record without a re-read.
type DeliveryChange struct {
	Seq        uint64
	DeliveryID kernel.UUID
	Reference  string
	From       delivery.Status
	To         delivery.Status
	ActorID    kernel.UUID
	OccurredAt time.Time
	Snapshot   DeliverySnapshot
}

// ChangePublisher is the outbound feed of committed delivery transitions.
// Handlers publish after their transaction commits, never before, so a
// subscriber only ever observes durable state.
type ChangePublisher interface {
	// Publish appends the change to the feed, assigning its sequence
	// number. Publish never blocks on slow subscribers.
	Publish(ctx context.Context, change DeliveryChange) error

	// Subscribe registers a consumer. The returned channel delivers changes
	// in sequence order; the cancel function detaches the consumer and
	// closes the channel.
	Subscribe(ctx context.Context) (<-chan DeliveryChange, func())
}
