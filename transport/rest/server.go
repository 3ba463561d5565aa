package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/rocketscienceinc/disco-tictactoe/internal/usecase"
)

const shutdownTimeout = 5 * time.Second

type gameManager interface {
	MakeTurn(ctx context.Context, cell int) usecase.TurnResult
	ResetGame(ctx context.Context) usecase.Snapshot
	ResetScores(ctx context.Context) usecase.Snapshot
	ToggleSound(ctx context.Context) usecase.Snapshot
	Snapshot() usecase.Snapshot
}

type Server struct {
	logger  *slog.Logger
	manager gameManager
	mux     *http.ServeMux
}

// New builds the HTTP surface. extra mounts other transports (websocket, mcp)
// on the same mux, keyed by pattern.
func New(logger *slog.Logger, manager gameManager, extra map[string]http.Handler) *Server {
	server := &Server{
		logger:  logger.With("component", "rest"),
		manager: manager,
		mux:     http.NewServeMux(),
	}

	server.mux.HandleFunc("GET /ping", server.ping)
	server.mux.HandleFunc("GET /api/game", server.getGame)
	server.mux.HandleFunc("POST /api/game/move", server.makeMove)
	server.mux.HandleFunc("POST /api/game/reset", server.resetGame)
	server.mux.HandleFunc("POST /api/scores/reset", server.resetScores)
	server.mux.HandleFunc("POST /api/settings/sound", server.toggleSound)
	server.mux.HandleFunc("GET /{$}", server.index)

	for pattern, handler := range extra {
		server.mux.Handle(pattern, handler)
	}

	return server
}

func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	that.mux.ServeHTTP(w, r)
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}

		return nil
	}
}
