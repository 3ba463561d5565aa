package events

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/disco-tictactoe/internal/entity"
	"github.com/rocketscienceinc/disco-tictactoe/internal/presentation"
)

type Type string

const (
	TypeMove        Type = "move"
	TypeGameOver    Type = "game_over"
	TypeGameReset   Type = "game_reset"
	TypeScoresReset Type = "scores_reset"
	TypeSettings    Type = "settings"
)

// Event is emitted once per accepted engine operation. ID is unique so a client
// that sees the same event twice can ignore the repeat.
type Event struct {
	ID         string                `json:"id"`
	Type       Type                  `json:"type"`
	Transition entity.Transition     `json:"transition"`
	State      entity.GameState      `json:"state"`
	Scores     entity.ScoreBoard     `json:"scores"`
	Status     string                `json:"status"`
	Settings   presentation.Settings `json:"settings"`
	Cues       []presentation.Cue    `json:"cues,omitempty"`
	At         time.Time             `json:"at"`
}

func New(eventType Type, state entity.GameState, scores entity.ScoreBoard) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Transition: entity.Transition{Kind: entity.TransitionNone},
		State:      state,
		Scores:     scores,
		Status:     state.Status(),
		At:         time.Now().UTC(),
	}
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Multi publishes to every publisher, even when an earlier one fails.
type Multi []Publisher

func (that Multi) Publish(ctx context.Context, event Event) error {
	var errs []error
	for _, publisher := range that {
		if err := publisher.Publish(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("publish %s: %w", event.Type, err))
		}
	}

	return errors.Join(errs...)
}
