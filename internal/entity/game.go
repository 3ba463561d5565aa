package entity

import (
	"fmt"
	"strings"
)

type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""
)

const BoardSize = 9

// Opponent returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// WinningLines are the rows, columns and diagonals of the 3x3 grid, row-major.
var WinningLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

type Board [BoardSize]Mark

// IsFull reports whether no cell is empty.
func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// String draws the grid as text. Empty cells show their index.
func (that Board) String() string {
	var b strings.Builder

	for row := range 3 {
		if row > 0 {
			b.WriteString("---+---+---\n")
		}

		for col := range 3 {
			cell := row*3 + col
			if col > 0 {
				b.WriteString("|")
			}

			if that[cell] == EmptyCell {
				fmt.Fprintf(&b, " %d ", cell)
			} else {
				fmt.Fprintf(&b, " %s ", that[cell])
			}
		}

		b.WriteString("\n")
	}

	return b.String()
}

func Row(cell int) int { return cell / 3 }

func Col(cell int) int { return cell % 3 }

func InRange(cell int) bool {
	return cell >= 0 && cell < BoardSize
}

type OutcomeKind string

const (
	OutcomeInProgress OutcomeKind = "in_progress"
	OutcomeWin        OutcomeKind = "win"
	OutcomeDraw       OutcomeKind = "draw"
)

type Outcome struct {
	Kind   OutcomeKind `json:"kind"`
	Winner Mark        `json:"winner,omitempty"`
	Line   []int       `json:"line,omitempty"`
}

func InProgress() Outcome {
	return Outcome{Kind: OutcomeInProgress}
}

func Win(player Mark, line [3]int) Outcome {
	return Outcome{Kind: OutcomeWin, Winner: player, Line: []int{line[0], line[1], line[2]}}
}

func Draw() Outcome {
	return Outcome{Kind: OutcomeDraw}
}

func (that Outcome) IsTerminal() bool {
	return that.Kind == OutcomeWin || that.Kind == OutcomeDraw
}

// InLine reports whether cell belongs to the winning line, if any.
func (that Outcome) InLine(cell int) bool {
	for _, c := range that.Line {
		if c == cell {
			return true
		}
	}

	return false
}

// GameState is one game: the board, who moves next and how it stands.
// Started only gates entrance animations in the presentation layer.
type GameState struct {
	Board         Board   `json:"board"`
	CurrentPlayer Mark    `json:"current_player"`
	Outcome       Outcome `json:"outcome"`
	Started       bool    `json:"started"`
}

func NewGameState() GameState {
	return GameState{
		Board:         Board{},
		CurrentPlayer: PlayerX,
		Outcome:       InProgress(),
	}
}

func (that GameState) IsTerminal() bool {
	return that.Outcome.IsTerminal()
}

// Status is the human readable summary shown above the board.
func (that GameState) Status() string {
	switch that.Outcome.Kind {
	case OutcomeWin:
		return fmt.Sprintf("Player %s wins!", that.Outcome.Winner)
	case OutcomeDraw:
		return "It's a draw!"
	default:
		return fmt.Sprintf("Player %s's turn", that.CurrentPlayer)
	}
}

type ScoreBoard struct {
	X int `json:"x"`
	O int `json:"o"`
}

func (that ScoreBoard) Of(player Mark) int {
	switch player {
	case PlayerX:
		return that.X
	case PlayerO:
		return that.O
	default:
		return 0
	}
}

type TransitionKind string

const (
	TransitionNone       TransitionKind = "none"
	TransitionBecameWin  TransitionKind = "became_win"
	TransitionBecameDraw TransitionKind = "became_draw"
)

// Transition describes what a single accepted move did to the outcome.
type Transition struct {
	Kind   TransitionKind `json:"kind"`
	Player Mark           `json:"player,omitempty"`
}

func (that Transition) IsGameOver() bool {
	return that.Kind == TransitionBecameWin || that.Kind == TransitionBecameDraw
}
