package changefeed_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"livraison/internal/adapters/out/changefeed"
	"livraison/internal/core/domain/model/delivery"
	"livraison/internal/core/domain/model/kernel"
	"livraison/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testChange() ports.DeliveryChange {
	return ports.DeliveryChange{
		DeliveryID: kernel.NewUUID(),
		Reference:  "LIV-2025-0001",
		From:       delivery.StatusPending,
		To:         delivery.StatusAssigned,
		ActorID:    kernel.NewUUID(),
		OccurredAt: time.Now().UTC(),
	}
}

func TestInProcessFeed_Publish(t *testing.T) {
	t.Run("should assign strictly increasing sequence numbers", func(t *testing.T) {
		feed := changefeed.NewInProcessFeed(testLogger())
		ch, cancel := feed.Subscribe(context.Background())
		defer cancel()

		for range 3 {
			require.NoError(t, feed.Publish(context.Background(), testChange()))
		}

		first := <-ch
		second := <-ch
		third := <-ch
		assert.Equal(t, uint64(1), first.Seq)
		assert.Equal(t, uint64(2), second.Seq)
		assert.Equal(t, uint64(3), third.Seq)
	})

	t.Run("should deliver the change to every subscriber", func(t *testing.T) {
		feed := changefeed.NewInProcessFeed(testLogger())
		firstCh, firstCancel := feed.Subscribe(context.Background())
		defer firstCancel()
		secondCh, secondCancel := feed.Subscribe(context.Background())
		defer secondCancel()

		change := testChange()
		require.NoError(t, feed.Publish(context.Background(), change))

		got := <-firstCh
		assert.Equal(t, change.DeliveryID, got.DeliveryID)
		got = <-secondCh
		assert.Equal(t, change.DeliveryID, got.DeliveryID)
	})

	t.Run("should not block when a subscriber buffer is full", func(t *testing.T) {
		feed := changefeed.NewInProcessFeed(testLogger())
		_, cancel := feed.Subscribe(context.Background())
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			// Well past the subscriber buffer size.
			for range 200 {
				_ = feed.Publish(context.Background(), testChange())
			}
		}()

		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("publish blocked on a lagging subscriber")
		}
	})

	t.Run("should keep publishing with no subscribers", func(t *testing.T) {
		feed := changefeed.NewInProcessFeed(testLogger())
		require.NoError(t, feed.Publish(context.Background(), testChange()))
	})
}

func TestInProcessFeed_Subscribe(t *testing.T) {
	t.Run("should stop delivering after cancel", func(t *testing.T) {
		feed := changefeed.NewInProcessFeed(testLogger())
		ch, cancel := feed.Subscribe(context.Background())

		cancel()
		require.NoError(t, feed.Publish(context.Background(), testChange()))

		_, open := <-ch
		assert.False(t, open)
	})

	t.Run("should tolerate repeated cancel", func(t *testing.T) {
		feed := changefeed.NewInProcessFeed(testLogger())
		_, cancel := feed.Subscribe(context.Background())

		cancel()
		cancel()
	})

	t.Run("should deliver concurrently published changes in order", func(t *testing.T) {
		feed := changefeed.NewInProcessFeed(testLogger())
		ch, cancel := feed.Subscribe(context.Background())
		defer cancel()

		const publishers = 4
		const perPublisher = 10

		var wg sync.WaitGroup
		for range publishers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range perPublisher {
					_ = feed.Publish(context.Background(), testChange())
				}
			}()
		}
		wg.Wait()

		var lastSeq uint64
		for range publishers * perPublisher {
			change := <-ch
			assert.Greater(t, change.Seq, lastSeq)
			lastSeq = change.Seq
		}
	})
}
