// Package changefeed provides the in-process implementation of the delivery
// change feed. Handlers publish committed transitions; subscribers (the HTTP
// event stream, the jobs) consume them in sequence order.
package changefeed

import (
	"context"
	"log/slog"
	"sync"

	"livraison/internal/core/ports"
)

// subscriberBuffer is the per-subscriber channel capacity. A subscriber that
// falls this far behind starts losing changes rather than stalling the
// publishing handler.
const subscriberBuffer = 64

// InProcessFeed is a ChangePublisher fanning committed delivery transitions
// out to in-process subscribers. Sequence numbers are assigned under the
// same lock that delivers the change, so every subscriber observes the feed
// in publish order.
type InProcessFeed struct {
	logger *slog.Logger

	mu          sync.Mutex
	seq         uint64
	subscribers map[uint64]chan ports.DeliveryChange
	nextSubID   uint64
}

// NewInProcessFeed creates an empty feed.
func NewInProcessFeed(logger *slog.Logger) *InProcessFeed {
	return &InProcessFeed{
		logger:      logger,
		subscribers: make(map[uint64]chan ports.DeliveryChange),
	}
}

// Publish assigns the next sequence number and delivers the change to every
// subscriber. Delivery is non-blocking: a full subscriber buffer drops the
// change for that subscriber and logs the gap, the sequence numbers let the
// consumer detect it.
func (f *InProcessFeed) Publish(ctx context.Context, change ports.DeliveryChange) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	change.Seq = f.seq

	for id, ch := range f.subscribers {
		select {
		case ch <- change:
		default:
			f.logger.WarnContext(ctx, "change feed subscriber lagging, dropping change",
				"subscriber", id,
				"seq", change.Seq,
				"delivery_id", change.DeliveryID.String(),
			)
		}
	}

	return nil
}

// Subscribe registers a consumer and returns its channel together with a
// cancel function. Cancel is idempotent and closes the channel once no
// publish can be writing to it.
func (f *InProcessFeed) Subscribe(_ context.Context) (<-chan ports.DeliveryChange, func()) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.nextSubID++
	id := f.nextSubID
	ch := make(chan ports.DeliveryChange, subscriberBuffer)
	f.subscribers[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subscribers, id)
			f.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}
