package repositories

import "context"

// Event is a named payload published on a room channel.
type Event struct {
	Name string `json:"event"`
	Data any    `json:"data"`
}

// Broadcaster is the pub/sub transport behind room channels. Delivery
// guarantees (ordering, duplicates) are whatever the provider gives; the
// relays do not defend against either.
type Broadcaster interface {
	// Publish fans an event out to every subscriber of the room's channel,
	// including the publisher's own session if it is subscribed.
	Publish(ctx context.Context, roomCode string, event Event) error

	// Subscribe opens a subscription to the room's channel. The returned
	// channel yields raw event payloads and is closed when ctx is cancelled.
	Subscribe(ctx context.Context, roomCode string) (<-chan []byte, error)
}
