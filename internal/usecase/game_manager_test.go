package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/disco-tictactoe/internal/entity"
	"github.com/rocketscienceinc/disco-tictactoe/internal/events"
	"github.com/rocketscienceinc/disco-tictactoe/internal/presentation"
	mockedUseCase "github.com/rocketscienceinc/disco-tictactoe/mocks/usecase"
	"github.com/rocketscienceinc/disco-tictactoe/testing/suite"
)

var errRedisDown = errors.New("redis down")

func ofType(eventType events.Type) interface{} {
	return mock.MatchedBy(func(event events.Event) bool {
		return event.Type == eventType
	})
}

func TestGameManager_MakeTurn(t *testing.T) {
	ctx := context.Background()
	settings := presentation.Settings{SoundEnabled: true, DiscoMode: true}

	t.Run("Accepted move publishes one move event", func(t *testing.T) {
		// Given: a manager with a mocked publisher
		publisher := mockedUseCase.NewMockeventPublisher(t)
		manager := NewGameManager(suite.Logger(), publisher, settings)

		publisher.EXPECT().
			Publish(mock.Anything, ofType(events.TypeMove)).
			Return(nil).
			Once()

		// When: X plays the centre
		result := manager.MakeTurn(ctx, 4)

		// Then: the move is accepted and O is to move
		require.True(t, result.Accepted)
		assert.Equal(t, entity.PlayerX, result.Player)
		assert.Equal(t, "Player O's turn", result.Status)
		assert.NotEmpty(t, result.Cues)
	})

	t.Run("Rejected move publishes nothing", func(t *testing.T) {
		// Given: X already holds cell 0
		publisher := mockedUseCase.NewMockeventPublisher(t)
		manager := NewGameManager(suite.Logger(), publisher, settings)

		publisher.EXPECT().
			Publish(mock.Anything, ofType(events.TypeMove)).
			Return(nil).
			Once()

		manager.MakeTurn(ctx, 0)

		// When: O tries the same cell
		result := manager.MakeTurn(ctx, 0)

		// Then: it is rejected silently and explains why
		assert.False(t, result.Accepted)
		assert.Equal(t, "cell is already occupied", result.Reason)
		assert.Empty(t, result.Cues)
		assert.Equal(t, entity.PlayerO, result.State.CurrentPlayer)
	})

	t.Run("Winning move publishes a single game over event", func(t *testing.T) {
		// Given: a manager with a mocked publisher
		publisher := mockedUseCase.NewMockeventPublisher(t)
		manager := NewGameManager(suite.Logger(), publisher, settings)

		publisher.EXPECT().
			Publish(mock.Anything, ofType(events.TypeMove)).
			Return(nil).
			Times(4)

		var gameOver events.Event
		publisher.EXPECT().
			Publish(mock.Anything, ofType(events.TypeGameOver)).
			Run(func(_ context.Context, event events.Event) { gameOver = event }).
			Return(nil).
			Once()

		// When: X wins the first column and keeps clicking
		var result TurnResult
		for _, cell := range []int{0, 1, 3, 4, 6, 2, 5} {
			result = manager.MakeTurn(ctx, cell)
		}

		// Then: the event carries the win and the score moved exactly once
		assert.False(t, result.Accepted)
		assert.Equal(t, entity.Transition{Kind: entity.TransitionBecameWin, Player: entity.PlayerX}, gameOver.Transition)
		assert.Equal(t, entity.ScoreBoard{X: 1}, gameOver.Scores)
		assert.Equal(t, "Player X wins!", gameOver.Status)
		assert.Equal(t, entity.ScoreBoard{X: 1}, manager.Snapshot().Scores)
	})

	t.Run("Publish failure does not undo the move", func(t *testing.T) {
		// Given: a publisher that always fails
		publisher := mockedUseCase.NewMockeventPublisher(t)
		manager := NewGameManager(suite.Logger(), publisher, settings)

		publisher.EXPECT().
			Publish(mock.Anything, mock.Anything).
			Return(errRedisDown).
			Once()

		// When: X plays
		result := manager.MakeTurn(ctx, 0)

		// Then: the move stands
		assert.True(t, result.Accepted)
		assert.Equal(t, entity.PlayerX, manager.Snapshot().State.Board[0])
	})
}

func TestGameManager_Resets(t *testing.T) {
	ctx := context.Background()

	t.Run("ResetGame keeps scores", func(t *testing.T) {
		// Given: X has won once
		publisher := mockedUseCase.NewMockeventPublisher(t)
		manager := NewGameManager(suite.Logger(), publisher, presentation.Settings{})

		publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)

		for _, cell := range []int{0, 1, 3, 4, 6} {
			manager.MakeTurn(ctx, cell)
		}

		// When: the game is reset
		snapshot := manager.ResetGame(ctx)

		// Then: the board is fresh and the score remains
		assert.Equal(t, entity.NewGameState(), snapshot.State)
		assert.Equal(t, entity.ScoreBoard{X: 1}, snapshot.Scores)
		publisher.AssertCalled(t, "Publish", mock.Anything, ofType(events.TypeGameReset))
	})

	t.Run("ResetScores zeroes scores and the board", func(t *testing.T) {
		// Given: X has won once and a new game has started
		publisher := mockedUseCase.NewMockeventPublisher(t)
		manager := NewGameManager(suite.Logger(), publisher, presentation.Settings{})

		publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)

		for _, cell := range []int{0, 1, 3, 4, 6} {
			manager.MakeTurn(ctx, cell)
		}
		manager.ResetGame(ctx)
		manager.MakeTurn(ctx, 4)

		// When: scores are reset
		snapshot := manager.ResetScores(ctx)

		// Then: everything is back to zero
		assert.Equal(t, entity.NewGameState(), snapshot.State)
		assert.Equal(t, entity.ScoreBoard{}, snapshot.Scores)
		assert.Equal(t, "Player X's turn", snapshot.Status)
		publisher.AssertCalled(t, "Publish", mock.Anything, ofType(events.TypeScoresReset))
	})
}

func TestGameManager_ToggleSound(t *testing.T) {
	// Given: sound starts enabled
	publisher := mockedUseCase.NewMockeventPublisher(t)
	manager := NewGameManager(suite.Logger(), publisher, presentation.Settings{SoundEnabled: true})

	publisher.EXPECT().
		Publish(mock.Anything, ofType(events.TypeSettings)).
		Return(nil).
		Twice()

	// When: toggled twice
	first := manager.ToggleSound(context.Background())
	second := manager.ToggleSound(context.Background())

	// Then: it goes off then on again
	assert.False(t, first.Settings.SoundEnabled)
	assert.True(t, second.Settings.SoundEnabled)
}

func TestGameManager_ConcurrentMoves(t *testing.T) {
	// Given: a manager fed by an in-process broadcaster
	broadcaster := events.NewBroadcaster(suite.Logger())
	manager := NewGameManager(suite.Logger(), broadcaster, presentation.Settings{})

	// When: every cell is clicked from its own goroutine
	var wg sync.WaitGroup
	for cell := 0; cell < entity.BoardSize; cell++ {
		wg.Add(1)
		go func(cell int) {
			defer wg.Done()
			manager.MakeTurn(context.Background(), cell)
		}(cell)
	}
	wg.Wait()

	// Then: the marks on the board alternate counts consistently with X moving first
	snapshot := manager.Snapshot()

	var xCount, oCount int
	for _, cell := range snapshot.State.Board {
		switch cell {
		case entity.PlayerX:
			xCount++
		case entity.PlayerO:
			oCount++
		}
	}

	assert.True(t, xCount == oCount || xCount == oCount+1, "x=%d o=%d", xCount, oCount)
	assert.Equal(t, snapshot.State.Outcome.Kind == entity.OutcomeWin, snapshot.Scores.X+snapshot.Scores.O == 1)
}
