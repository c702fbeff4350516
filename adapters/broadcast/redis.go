package broadcast

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/trueconnect/talk/domain/entities"
	"github.com/trueconnect/talk/domain/repositories"
)

// RedisConfig holds connection settings for the pub/sub transport
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisBroadcaster implements repositories.Broadcaster over Redis pub/sub.
// Each room maps to one channel; delivery and ordering are whatever Redis
// gives per subscription.
type RedisBroadcaster struct {
	client *redis.Client
	logger *zap.Logger
}

var _ repositories.Broadcaster = (*RedisBroadcaster)(nil)

// NewRedisBroadcaster creates a broadcaster on a fresh Redis client
func NewRedisBroadcaster(config RedisConfig, logger *zap.Logger) *RedisBroadcaster {
	if config.Addr == "" {
		config.Addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})
	return &RedisBroadcaster{
		client: client,
		logger: logger,
	}
}

// Publish marshals the event and fans it out on the room's channel
func (b *RedisBroadcaster) Publish(ctx context.Context, roomCode string, event repositories.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	channel := entities.RoomChannel(roomCode)
	if err := b.client.Publish(ctx, channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", channel, err)
	}

	b.logger.Debug("Published event",
		zap.String("channel", channel),
		zap.String("event", event.Name))
	return nil
}

// Subscribe opens a channel subscription that lives until ctx is cancelled
func (b *RedisBroadcaster) Subscribe(ctx context.Context, roomCode string) (<-chan []byte, error) {
	channel := entities.RoomChannel(roomCode)
	pubsub := b.client.Subscribe(ctx, channel)

	// Force the subscription to be established before returning so a publish
	// right after Subscribe is not lost.
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, fmt.Errorf("failed to subscribe to %s: %w", channel, err)
	}

	out := make(chan []byte, 16)
	go func() {
		defer close(out)
		defer pubsub.Close()

		messages := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
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

	b.logger.Debug("Subscribed to channel", zap.String("channel", channel))
	return out, nil
}

// Close releases the underlying Redis client
func (b *RedisBroadcaster) Close() error {
	return b.client.Close()
}
