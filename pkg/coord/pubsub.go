package coord

import (
	"context"
	"fmt"
)

// PublishEvent mirrors an event envelope to the shared channel so peer
// instances can fan it out to their own websocket clients.
func (c *Client) PublishEvent(ctx context.Context, payload []byte) error {
	if err := c.rdb.Publish(ctx, c.cfg.EventChannel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// SubscribeEvents subscribes to the shared event channel and returns a
// receive channel of raw payloads. The subscription is closed when ctx
// is cancelled.
func (c *Client) SubscribeEvents(ctx context.Context) <-chan []byte {
	sub := c.rdb.Subscribe(ctx, c.cfg.EventChannel)
	out := make(chan []byte, 64)

	go func() {
		defer close(out)
		defer func() { _ = sub.Close() }()

		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				select {
				case out <- []byte(msg.Payload):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
