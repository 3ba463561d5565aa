package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/disco-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/disco-tictactoe/internal/entity"
)

// MoveResult is what AttemptMove did. A rejected move leaves State and Scores
// exactly as they were and carries the reason for the rejection.
type MoveResult struct {
	Accepted   bool              `json:"accepted"`
	Reason     error             `json:"-"`
	Cell       int               `json:"cell"`
	Player     entity.Mark       `json:"player,omitempty"`
	Transition entity.Transition `json:"transition"`
	State      entity.GameState  `json:"state"`
	Scores     entity.ScoreBoard `json:"scores"`
}

// Engine owns one game and the score tally that survives game resets.
// It is not safe for concurrent use.
type Engine struct {
	state  entity.GameState
	scores entity.ScoreBoard
}

func NewEngine() *Engine {
	return &Engine{
		state: entity.NewGameState(),
	}
}

// AttemptMove places the current player's mark on cell. Moves on a finished
// game, on an occupied cell or outside the board are silently rejected.
func (that *Engine) AttemptMove(cell int) MoveResult {
	if err := that.validateMove(cell); err != nil {
		return MoveResult{
			Reason:     err,
			Cell:       cell,
			Transition: entity.Transition{Kind: entity.TransitionNone},
			State:      that.State(),
			Scores:     that.scores,
		}
	}

	player := that.state.CurrentPlayer
	that.state.Board[cell] = player
	that.state.Started = true

	transition := that.updateGameStatus(player)

	return MoveResult{
		Accepted:   true,
		Cell:       cell,
		Player:     player,
		Transition: transition,
		State:      that.State(),
		Scores:     that.scores,
	}
}

// validateMove - checks if the move is valid.
func (that *Engine) validateMove(cell int) error {
	if that.state.IsTerminal() {
		return apperror.ErrGameFinished
	}

	if !entity.InRange(cell) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.state.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move and scores a win.
func (that *Engine) updateGameStatus(player entity.Mark) entity.Transition {
	that.state.Outcome = Evaluate(that.state.Board)

	switch that.state.Outcome.Kind {
	case entity.OutcomeWin:
		winner := that.state.Outcome.Winner
		if winner == entity.PlayerX {
			that.scores.X++
		} else {
			that.scores.O++
		}

		return entity.Transition{Kind: entity.TransitionBecameWin, Player: winner}
	case entity.OutcomeDraw:
		return entity.Transition{Kind: entity.TransitionBecameDraw}
	default:
		that.state.CurrentPlayer = player.Opponent()
		return entity.Transition{Kind: entity.TransitionNone}
	}
}

// ResetGame starts a new game. Scores are kept.
func (that *Engine) ResetGame() {
	that.state = entity.NewGameState()
}

// ResetScores zeroes both counters and starts a new game.
func (that *Engine) ResetScores() {
	that.scores = entity.ScoreBoard{}
	that.ResetGame()
}

// State returns a copy of the current game; mutating it does not affect the engine.
func (that *Engine) State() entity.GameState {
	state := that.state
	if state.Outcome.Line != nil {
		state.Outcome.Line = append([]int(nil), state.Outcome.Line...)
	}

	return state
}

func (that *Engine) Scores() entity.ScoreBoard {
	return that.scores
}

func (that *Engine) CurrentStatus() string {
	return that.state.Status()
}

// Evaluate classifies a board. A completed line wins over a full board.
func Evaluate(board entity.Board) entity.Outcome {
	for _, line := range entity.WinningLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return entity.Win(a, line)
		}
	}

	if board.IsFull() {
		return entity.Draw()
	}

	return entity.InProgress()
}
