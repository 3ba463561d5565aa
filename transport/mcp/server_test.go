package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/disco-tictactoe/internal/entity"
	"github.com/rocketscienceinc/disco-tictactoe/internal/events"
	"github.com/rocketscienceinc/disco-tictactoe/internal/presentation"
	"github.com/rocketscienceinc/disco-tictactoe/internal/usecase"
	"github.com/rocketscienceinc/disco-tictactoe/testing/suite"
)

func newServer(t *testing.T) (*Server, *usecase.GameManager) {
	t.Helper()

	manager := usecase.NewGameManager(suite.Logger(), events.NewBroadcaster(suite.Logger()),
		presentation.Settings{SoundEnabled: true})

	return New(suite.Logger(), manager, "test"), manager
}

func newCallToolRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func texts(t *testing.T, result *mcp.CallToolResult) []string {
	t.Helper()

	out := make([]string, 0, len(result.Content))
	for _, content := range result.Content {
		text, ok := content.(mcp.TextContent)
		require.True(t, ok, "expected text content, got %T", content)
		out = append(out, text.Text)
	}

	return out
}

func TestAttemptMove(t *testing.T) {
	t.Run("Accepted move", func(t *testing.T) {
		server, manager := newServer(t)

		// When: the agent plays the centre
		result, err := server.handleAttemptMove(context.Background(),
			newCallToolRequest("attempt_move", map[string]any{"cell": float64(4)}))

		// Then: the board is updated and both renderings are returned
		require.NoError(t, err)
		assert.False(t, result.IsError)

		content := texts(t, result)
		require.Len(t, content, 2)
		assert.Contains(t, content[0], "Player X took cell 4.")
		assert.Contains(t, content[0], "Player O's turn")

		var turn usecase.TurnResult
		require.NoError(t, json.Unmarshal([]byte(content[1]), &turn))
		assert.True(t, turn.Accepted)
		assert.Equal(t, entity.PlayerX, manager.Snapshot().State.Board[4])
	})

	t.Run("Occupied cell is ignored", func(t *testing.T) {
		server, _ := newServer(t)
		request := newCallToolRequest("attempt_move", map[string]any{"cell": float64(0)})

		_, err := server.handleAttemptMove(context.Background(), request)
		require.NoError(t, err)

		// When: O tries the same cell
		result, err := server.handleAttemptMove(context.Background(), request)

		// Then: it is reported, not raised
		require.NoError(t, err)
		assert.False(t, result.IsError)
		assert.Contains(t, texts(t, result)[0], "was ignored: cell is already occupied")
	})

	t.Run("Fractional cell is a tool error and changes nothing", func(t *testing.T) {
		for _, cell := range []float64{-0.5, 4.5, 4.9, 8.99} {
			server, manager := newServer(t)

			// When: the agent sends a number that is not a cell index
			result, err := server.handleAttemptMove(context.Background(),
				newCallToolRequest("attempt_move", map[string]any{"cell": cell}))

			// Then: it is refused and the board stays empty
			require.NoError(t, err)
			assert.True(t, result.IsError, "cell %v", cell)
			assert.Contains(t, texts(t, result)[0], "invalid cell index")
			assert.Equal(t, entity.NewGameState(), manager.Snapshot().State, "cell %v", cell)
		}
	})

	t.Run("Whole number outside the board is ignored", func(t *testing.T) {
		server, manager := newServer(t)

		result, err := server.handleAttemptMove(context.Background(),
			newCallToolRequest("attempt_move", map[string]any{"cell": float64(-1)}))

		require.NoError(t, err)
		assert.False(t, result.IsError)
		assert.Contains(t, texts(t, result)[0], "was ignored: invalid cell index")
		assert.Equal(t, entity.NewGameState(), manager.Snapshot().State)
	})

	t.Run("Missing cell is a tool error", func(t *testing.T) {
		server, _ := newServer(t)

		result, err := server.handleAttemptMove(context.Background(),
			newCallToolRequest("attempt_move", map[string]any{}))

		require.NoError(t, err)
		assert.True(t, result.IsError)
	})
}

func TestResets(t *testing.T) {
	server, manager := newServer(t)
	ctx := context.Background()

	// Given: X has won once
	for _, cell := range []int{0, 3, 1, 4, 2} {
		manager.MakeTurn(ctx, cell)
	}
	require.Equal(t, entity.ScoreBoard{X: 1}, manager.Snapshot().Scores)

	// When: resetting the game
	result, err := server.handleResetGame(ctx, newCallToolRequest("reset_game", nil))
	require.NoError(t, err)

	// Then: the board is empty but the score is kept
	assert.Contains(t, texts(t, result)[0], "Score: X 1, O 0")
	assert.Equal(t, entity.NewGameState(), manager.Snapshot().State)

	// When: resetting the scores
	result, err = server.handleResetScores(ctx, newCallToolRequest("reset_scores", nil))
	require.NoError(t, err)

	// Then: both are zero
	assert.Contains(t, texts(t, result)[0], "Score: X 0, O 0")
}

func TestGameState(t *testing.T) {
	server, _ := newServer(t)

	result, err := server.handleGameState(context.Background(), newCallToolRequest("game_state", nil))

	require.NoError(t, err)
	content := texts(t, result)
	assert.Contains(t, content[0], " 0 | 1 | 2 ")
	assert.Contains(t, content[0], "Player X's turn")

	var snapshot usecase.Snapshot
	require.NoError(t, json.Unmarshal([]byte(content[1]), &snapshot))
	assert.True(t, snapshot.Settings.SoundEnabled)
}

func TestServeHTTP(t *testing.T) {
	server, manager := newServer(t)
	srv := httptest.NewServer(server)
	t.Cleanup(srv.Close)

	post := func(t *testing.T, body string) map[string]any {
		t.Helper()

		resp, err := http.Post(srv.URL, "application/json", bytes.NewBufferString(body))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var out map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))

		return out
	}

	t.Run("Lists the tools", func(t *testing.T) {
		out := post(t, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)

		result, ok := out["result"].(map[string]any)
		require.True(t, ok, "unexpected response: %v", out)

		var names []string
		for _, tool := range result["tools"].([]any) {
			names = append(names, tool.(map[string]any)["name"].(string))
		}
		assert.ElementsMatch(t, []string{"game_state", "attempt_move", "reset_game", "reset_scores"}, names)
	})

	t.Run("Calls a tool", func(t *testing.T) {
		out := post(t, `{"jsonrpc":"2.0","id":2,"method":"tools/call","params":{"name":"attempt_move","arguments":{"cell":8}}}`)

		assert.Contains(t, out, "result")
		assert.Equal(t, entity.PlayerX, manager.Snapshot().State.Board[8])
	})

	t.Run("Rejects other methods", func(t *testing.T) {
		resp, err := http.Get(srv.URL)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}
