package usecase

import (
	"context"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/disco-tictactoe/internal/entity"
	"github.com/rocketscienceinc/disco-tictactoe/internal/events"
	"github.com/rocketscienceinc/disco-tictactoe/internal/presentation"
	"github.com/rocketscienceinc/disco-tictactoe/internal/tictactoe"
)

type eventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

// Snapshot is everything a client needs to draw the game.
type Snapshot struct {
	State    entity.GameState      `json:"state"`
	Scores   entity.ScoreBoard     `json:"scores"`
	Status   string                `json:"status"`
	Settings presentation.Settings `json:"settings"`
}

type TurnResult struct {
	Accepted   bool               `json:"accepted"`
	Reason     string             `json:"reason,omitempty"`
	Cell       int                `json:"cell"`
	Player     entity.Mark        `json:"player,omitempty"`
	Transition entity.Transition  `json:"transition"`
	Cues       []presentation.Cue `json:"cues,omitempty"`
	Snapshot
}

// GameManager is the single owner of the engine. Transports call it from
// their own goroutines; the mutex keeps one operation running at a time.
type GameManager struct {
	logger    *slog.Logger
	publisher eventPublisher

	mu      sync.Mutex
	engine  *tictactoe.Engine
	planner *presentation.Planner
}

func NewGameManager(logger *slog.Logger, publisher eventPublisher, settings presentation.Settings) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		publisher: publisher,
		engine:    tictactoe.NewEngine(),
		planner:   presentation.NewPlanner(settings),
	}
}

func (that *GameManager) MakeTurn(ctx context.Context, cell int) TurnResult {
	log := that.logger.With("method", "MakeTurn", "cell", cell)

	that.mu.Lock()
	defer that.mu.Unlock()

	result := that.engine.AttemptMove(cell)
	cues := that.planner.ForMove(result)

	turn := TurnResult{
		Accepted:   result.Accepted,
		Cell:       cell,
		Player:     result.Player,
		Transition: result.Transition,
		Cues:       cues,
		Snapshot:   that.snapshot(),
	}

	if !result.Accepted {
		turn.Reason = result.Reason.Error()
		log.Debug("move rejected", "reason", result.Reason)

		return turn
	}

	eventType := events.TypeMove
	if result.Transition.IsGameOver() {
		eventType = events.TypeGameOver
		log.Info("game over", "transition", result.Transition.Kind, "winner", result.Transition.Player,
			"score_x", result.Scores.X, "score_o", result.Scores.O)
	} else {
		log.Debug("move accepted", "player", result.Player)
	}

	event := that.newEvent(eventType, cues)
	event.Transition = result.Transition
	that.publish(ctx, event)

	return turn
}

func (that *GameManager) ResetGame(ctx context.Context) Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.engine.ResetGame()
	that.publish(ctx, that.newEvent(events.TypeGameReset, that.planner.ForReset()))

	that.logger.Info("game reset")

	return that.snapshot()
}

func (that *GameManager) ResetScores(ctx context.Context) Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.engine.ResetScores()
	that.publish(ctx, that.newEvent(events.TypeScoresReset, that.planner.ForReset()))

	that.logger.Info("scores reset")

	return that.snapshot()
}

func (that *GameManager) ToggleSound(ctx context.Context) Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	cues := that.planner.ToggleSound()
	that.publish(ctx, that.newEvent(events.TypeSettings, cues))

	that.logger.Info("sound toggled", "enabled", that.planner.Settings().SoundEnabled)

	return that.snapshot()
}

func (that *GameManager) Snapshot() Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.snapshot()
}

func (that *GameManager) snapshot() Snapshot {
	state := that.engine.State()

	return Snapshot{
		State:    state,
		Scores:   that.engine.Scores(),
		Status:   state.Status(),
		Settings: that.planner.Settings(),
	}
}

func (that *GameManager) newEvent(eventType events.Type, cues []presentation.Cue) events.Event {
	event := events.New(eventType, that.engine.State(), that.engine.Scores())
	event.Settings = that.planner.Settings()
	event.Cues = cues

	return event
}

// publish runs under the lock so subscribers see events in game order.
// The engine has already moved on, so a failed publish is only logged.
func (that *GameManager) publish(ctx context.Context, event events.Event) {
	if that.publisher == nil {
		return
	}

	if err := that.publisher.Publish(ctx, event); err != nil {
		that.logger.Error("failed to publish event", "event", event.Type, "error", err)
	}
}
