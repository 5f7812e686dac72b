package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/omniboxhq/omnibox/pkg/coord"
)

// Bridge subscribes to the shared Redis channel and re-delivers
// foreign-origin envelopes to the local sink. Own-origin envelopes are
// skipped; the publisher already delivered them locally.
type Bridge struct {
	coord      *coord.Client
	sink       Sink
	instanceID string

	cancel   context.CancelFunc
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewBridge creates a Bridge.
func NewBridge(coordClient *coord.Client, sink Sink, instanceID string) *Bridge {
	return &Bridge{coord: coordClient, sink: sink, instanceID: instanceID}
}

// Start begins consuming the shared channel in a goroutine.
func (b *Bridge) Start(ctx context.Context) {
	ctx, b.cancel = context.WithCancel(ctx)
	ch := b.coord.SubscribeEvents(ctx)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		slog.Info("Event bridge started", "instance_id", b.instanceID)
		for data := range ch {
			b.handle(data)
		}
		slog.Info("Event bridge stopped")
	}()
}

// Stop terminates the subscription and waits for the consumer loop.
func (b *Bridge) Stop() {
	b.stopOnce.Do(func() {
		if b.cancel != nil {
			b.cancel()
		}
		b.wg.Wait()
	})
}

func (b *Bridge) handle(data []byte) {
	var env Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		slog.Warn("Dropping malformed event envelope", "error", err)
		return
	}
	if env.Origin == b.instanceID {
		return
	}
	if env.Room == "" {
		slog.Warn("Dropping event envelope without room", "type", env.Type)
		return
	}
	b.sink.Deliver(env.Room, data)
}
