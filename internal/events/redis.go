package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// publishTimeout bounds a publish; the caller holds the game lock meanwhile.
const publishTimeout = 500 * time.Millisecond

// RedisPublisher mirrors events onto a redis pub/sub channel so that other
// processes (overlays, stream widgets) can react to the game.
type RedisPublisher struct {
	client  *redis.Client
	channel string
	timeout time.Duration
}

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return &RedisPublisher{
		client:  client,
		channel: channel,
		timeout: publishTimeout,
	}
}

func (that *RedisPublisher) Publish(ctx context.Context, event Event) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, that.timeout)
	defer cancel()

	if err = that.client.Publish(ctx, that.channel, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}

	return nil
}

// Decode parses a payload received from the channel.
func Decode(payload string) (Event, error) {
	var event Event
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		return Event{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return event, nil
}
