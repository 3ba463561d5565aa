package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/disco-tictactoe/internal/apperror"
)

type turnPayload struct {
	Cell *int `json:"cell"`
}

type errorPayload struct {
	Error string `json:"error"`
}

func unknownAction(action string) error {
	return fmt.Errorf("%w: %q", apperror.ErrUnknownAction, action)
}

// handleGameTurn replies to the sender only; everyone else learns about the
// move from the event it publishes.
func (that *Server) handleGameTurn(ctx context.Context, c *client, message *Message) error {
	var payload turnPayload

	if len(message.Payload) == 0 {
		return apperror.ErrMissingCell
	}

	if err := json.Unmarshal(message.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.Cell == nil {
		return apperror.ErrMissingCell
	}

	return that.sendMessage(c, message.Action, that.manager.MakeTurn(ctx, *payload.Cell))
}

func (that *Server) handleGameReset(ctx context.Context, c *client, message *Message) error {
	return that.sendMessage(c, message.Action, that.manager.ResetGame(ctx))
}

func (that *Server) handleScoresReset(ctx context.Context, c *client, message *Message) error {
	return that.sendMessage(c, message.Action, that.manager.ResetScores(ctx))
}

func (that *Server) handleToggleSound(ctx context.Context, c *client, message *Message) error {
	return that.sendMessage(c, message.Action, that.manager.ToggleSound(ctx))
}

func (that *Server) handleGameState(_ context.Context, c *client, message *Message) error {
	return that.sendMessage(c, message.Action, that.manager.Snapshot())
}
