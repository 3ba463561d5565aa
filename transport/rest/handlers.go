package rest

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/a-h/templ"

	"github.com/rocketscienceinc/disco-tictactoe/internal/apperror"
)

const maxBodyBytes = 1 << 10

type moveRequest struct {
	Cell *int `json:"cell"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (that *Server) ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("pong")); err != nil {
		that.logger.Error("failed to write pong", "error", err)
	}
}

func (that *Server) index(w http.ResponseWriter, r *http.Request) {
	templ.Handler(Page(that.manager.Snapshot())).ServeHTTP(w, r)
}

// Sounds serves the click, move and win clips the page plays. The mp3 files
// are deployment assets kept outside the repo.
func Sounds(dir string) http.Handler {
	return http.StripPrefix("/sounds/", http.FileServer(http.Dir(dir)))
}

func (that *Server) getGame(w http.ResponseWriter, _ *http.Request) {
	that.writeJSON(w, http.StatusOK, that.manager.Snapshot())
}

// makeMove answers 200 for rejected moves too; the body says whether it counted.
func (that *Server) makeMove(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "makeMove")

	cell, err := decodeMove(w, r)
	if err != nil {
		log.Debug("bad move request", "error", err)
		that.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	that.writeJSON(w, http.StatusOK, that.manager.MakeTurn(r.Context(), cell))
}

func (that *Server) resetGame(w http.ResponseWriter, r *http.Request) {
	that.writeJSON(w, http.StatusOK, that.manager.ResetGame(r.Context()))
}

func (that *Server) resetScores(w http.ResponseWriter, r *http.Request) {
	that.writeJSON(w, http.StatusOK, that.manager.ResetScores(r.Context()))
}

func (that *Server) toggleSound(w http.ResponseWriter, r *http.Request) {
	that.writeJSON(w, http.StatusOK, that.manager.ToggleSound(r.Context()))
}

func decodeMove(w http.ResponseWriter, r *http.Request) (int, error) {
	var req moveRequest

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		return 0, fmt.Errorf("failed to decode request: %w", err)
	}

	if req.Cell == nil {
		return 0, apperror.ErrMissingCell
	}

	return *req.Cell, nil
}

func (that *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		that.logger.Error("failed to write response", "error", err)
	}
}
