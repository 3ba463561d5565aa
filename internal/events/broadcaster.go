package events

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

const subscriberBuffer = 16

// Broadcaster fans events out to in-process subscribers. A subscriber whose
// buffer is full misses the event rather than blocking the game.
type Broadcaster struct {
	logger *slog.Logger

	mu          sync.RWMutex
	subscribers map[string]chan Event
}

func NewBroadcaster(logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		logger:      logger.With("component", "broadcaster"),
		subscribers: make(map[string]chan Event),
	}
}

func (that *Broadcaster) Subscribe() (string, <-chan Event) {
	id := uuid.NewString()
	ch := make(chan Event, subscriberBuffer)

	that.mu.Lock()
	that.subscribers[id] = ch
	that.mu.Unlock()

	return id, ch
}

// Unsubscribe closes the subscriber's channel. Unknown ids are ignored.
func (that *Broadcaster) Unsubscribe(id string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if ch, ok := that.subscribers[id]; ok {
		delete(that.subscribers, id)
		close(ch)
	}
}

func (that *Broadcaster) Publish(_ context.Context, event Event) error {
	that.mu.RLock()
	defer that.mu.RUnlock()

	for id, ch := range that.subscribers {
		select {
		case ch <- event:
		default:
			that.logger.Warn("subscriber is full, dropping event", "subscriber", id, "event", event.ID)
		}
	}

	return nil
}

func (that *Broadcaster) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.subscribers)
}
