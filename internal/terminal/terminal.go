package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/disco-tictactoe/internal/usecase"
)

const help = "Enter a cell 0-8, r to play again, s to reset scores, q to quit."

type gameManager interface {
	MakeTurn(ctx context.Context, cell int) usecase.TurnResult
	ResetGame(ctx context.Context) usecase.Snapshot
	ResetScores(ctx context.Context) usecase.Snapshot
	Snapshot() usecase.Snapshot
}

// Terminal plays the shared game one line at a time.
type Terminal struct {
	logger  *slog.Logger
	manager gameManager
	in      *bufio.Scanner
	out     io.Writer

	err error
}

func New(logger *slog.Logger, manager gameManager, in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		logger:  logger.With("component", "terminal"),
		manager: manager,
		in:      bufio.NewScanner(in),
		out:     out,
	}
}

// Run returns nil on q or end of input.
func (that *Terminal) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	that.printf("Disco Tic-Tac-Toe\n%s\n\n", help)
	that.render(that.manager.Snapshot())

	for {
		that.printf("> ")
		if that.err != nil {
			return fmt.Errorf("failed to write to terminal: %w", that.err)
		}

		if !that.in.Scan() {
			if err := that.in.Err(); err != nil {
				return fmt.Errorf("failed to read command: %w", err)
			}
			return nil
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		command := strings.ToLower(strings.TrimSpace(that.in.Text()))
		log.Debug("command received", "command", command)

		switch command {
		case "":
			continue
		case "q":
			that.printf("Bye!\n")
			return that.err
		case "r":
			that.render(that.manager.ResetGame(ctx))
		case "s":
			that.render(that.manager.ResetScores(ctx))
		default:
			cell, err := strconv.Atoi(command)
			if err != nil {
				that.printf("Unknown command %q. %s\n", command, help)
				continue
			}

			that.move(ctx, cell)
		}
	}
}

func (that *Terminal) move(ctx context.Context, cell int) {
	result := that.manager.MakeTurn(ctx, cell)
	if !result.Accepted {
		that.printf("Move ignored: %s.\n", result.Reason)
		return
	}

	if result.Transition.IsGameOver() {
		that.printf("\n*** %s ***\n", result.Status)
	}

	that.render(result.Snapshot)
}

func (that *Terminal) render(snapshot usecase.Snapshot) {
	that.printf("\n%s\n%s\nScore: X %d, O %d\n\n",
		snapshot.State.Board, snapshot.Status, snapshot.Scores.X, snapshot.Scores.O)
}

// printf keeps the first write error; Run reports it.
func (that *Terminal) printf(format string, args ...any) {
	if that.err != nil {
		return
	}

	_, that.err = fmt.Fprintf(that.out, format, args...)
}
