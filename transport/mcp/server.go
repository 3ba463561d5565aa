package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rocketscienceinc/disco-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/disco-tictactoe/internal/usecase"
)

const maxRequestBytes = 64 << 10

type gameManager interface {
	MakeTurn(ctx context.Context, cell int) usecase.TurnResult
	ResetGame(ctx context.Context) usecase.Snapshot
	ResetScores(ctx context.Context) usecase.Snapshot
	Snapshot() usecase.Snapshot
}

// Server exposes the game as MCP tools so an agent can play a side.
type Server struct {
	logger    *slog.Logger
	manager   gameManager
	mcpServer *server.MCPServer
}

func New(logger *slog.Logger, manager gameManager, version string) *Server {
	that := &Server{
		logger:  logger.With("component", "mcp"),
		manager: manager,
		mcpServer: server.NewMCPServer(
			"Disco Tic-Tac-Toe",
			version,
			server.WithToolCapabilities(true),
			server.WithInstructions(`Two players, X and O, take turns on a 3x3 board. X always starts.
Cells are numbered 0-8 row by row. Three marks in a row, column or diagonal win.
Moves on occupied cells or after the game is over are ignored.
Call game_state to see the board, attempt_move to play for whoever's turn it is.`),
		),
	}

	that.registerTools()

	return that
}

func (that *Server) MCPServer() *server.MCPServer {
	return that.mcpServer
}

func (that *Server) registerTools() {
	that.mcpServer.AddTool(mcp.NewTool("game_state",
		mcp.WithDescription("Get the board, whose turn it is, the scores and the settings"),
	), that.handleGameState)

	that.mcpServer.AddTool(mcp.NewTool("attempt_move",
		mcp.WithDescription("Place the current player's mark on a cell"),
		mcp.WithNumber("cell",
			mcp.Required(),
			mcp.Description("Cell index from 0 (top left) to 8 (bottom right)"),
		),
	), that.handleAttemptMove)

	that.mcpServer.AddTool(mcp.NewTool("reset_game",
		mcp.WithDescription("Clear the board and start a new round with X; scores are kept"),
	), that.handleResetGame)

	that.mcpServer.AddTool(mcp.NewTool("reset_scores",
		mcp.WithDescription("Set both players' scores back to zero"),
	), that.handleResetScores)
}

func (that *Server) handleGameState(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return snapshotResult(that.manager.Snapshot())
}

func (that *Server) handleAttemptMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := that.logger.With("method", "handleAttemptMove")

	cell, err := cellArgument(request)
	if err != nil {
		log.Debug("bad tool arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := that.manager.MakeTurn(ctx, cell)

	var b strings.Builder
	if result.Accepted {
		fmt.Fprintf(&b, "Player %s took cell %d.\n\n", result.Player, result.Cell)
	} else {
		fmt.Fprintf(&b, "Move on cell %d was ignored: %s.\n\n", result.Cell, result.Reason)
	}

	writeSnapshot(&b, result.Snapshot)

	return withJSON(b.String(), result)
}

func (that *Server) handleResetGame(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return snapshotResult(that.manager.ResetGame(ctx))
}

func (that *Server) handleResetScores(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return snapshotResult(that.manager.ResetScores(ctx))
}

// ServeHTTP answers JSON-RPC messages posted to /mcp.
func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		http.Error(w, "failed to read request", http.StatusBadRequest)
		return
	}

	response := that.mcpServer.HandleMessage(r.Context(), body)
	if response == nil {
		// notifications have no reply
		w.WriteHeader(http.StatusAccepted)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(response); err != nil {
		log.Error("failed to write response", "error", err)
	}
}

// ServeStdio blocks serving MCP over stdin and stdout.
func (that *Server) ServeStdio() error {
	if err := server.ServeStdio(that.mcpServer); err != nil {
		return fmt.Errorf("mcp stdio server: %w", err)
	}

	return nil
}

// cellArgument refuses fractional and huge numbers instead of truncating
// them onto some other cell.
func cellArgument(request mcp.CallToolRequest) (int, error) {
	value, err := request.RequireFloat("cell")
	if err != nil {
		return 0, fmt.Errorf("%w: %w", apperror.ErrMissingCell, err)
	}

	if value != math.Trunc(value) || math.Abs(value) > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %v is not a board position", apperror.ErrInvalidCell, value)
	}

	return int(value), nil
}

func snapshotResult(snapshot usecase.Snapshot) (*mcp.CallToolResult, error) {
	var b strings.Builder
	writeSnapshot(&b, snapshot)

	return withJSON(b.String(), snapshot)
}

func writeSnapshot(b *strings.Builder, snapshot usecase.Snapshot) {
	b.WriteString(snapshot.State.Board.String())
	fmt.Fprintf(b, "\n%s\nScore: X %d, O %d\n", snapshot.Status, snapshot.Scores.X, snapshot.Scores.O)
}

// withJSON returns the readable text followed by the machine-readable body.
func withJSON(text string, body any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tool result: %w", err)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
			mcp.NewTextContent(string(data)),
		},
	}, nil
}
