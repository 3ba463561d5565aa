package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/disco-tictactoe/internal/events"
	"github.com/rocketscienceinc/disco-tictactoe/internal/usecase"
)

const actionEvent = "event"

type gameManager interface {
	MakeTurn(ctx context.Context, cell int) usecase.TurnResult
	ResetGame(ctx context.Context) usecase.Snapshot
	ResetScores(ctx context.Context) usecase.Snapshot
	ToggleSound(ctx context.Context) usecase.Snapshot
	Snapshot() usecase.Snapshot
}

type eventSource interface {
	Subscribe() (string, <-chan events.Event)
	Unsubscribe(id string)
}

type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type handlerFunc func(ctx context.Context, client *client, message *Message) error

// Server upgrades /ws requests and fans every game event out to all
// connected clients. Replies to a client's own action go only to that client.
type Server struct {
	logger   *slog.Logger
	manager  gameManager
	source   eventSource
	upgrader websocket.Upgrader

	handlers map[string]handlerFunc

	mu      sync.RWMutex
	clients map[string]*client
}

func New(logger *slog.Logger, manager gameManager, source eventSource) *Server {
	server := &Server{
		logger:  logger.With("component", "websocket"),
		manager: manager,
		source:  source,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*http.Request) bool { return true },
		},

		handlers: make(map[string]handlerFunc),
		clients:  make(map[string]*client),
	}

	server.handlers["game:turn"] = server.handleGameTurn
	server.handlers["game:reset"] = server.handleGameReset
	server.handlers["scores:reset"] = server.handleScoresReset
	server.handlers["settings:sound"] = server.handleToggleSound
	server.handlers["game:state"] = server.handleGameState

	return server
}

// Run forwards events to connected clients until ctx is done.
func (that *Server) Run(ctx context.Context) {
	log := that.logger.With("method", "Run")

	id, stream := that.source.Subscribe()
	defer that.source.Unsubscribe(id)

	for {
		select {
		case <-ctx.Done():
			that.closeAll()
			return
		case event, ok := <-stream:
			if !ok {
				return
			}

			data, err := encode(actionEvent, event)
			if err != nil {
				log.Error("failed to encode event", "event_id", event.ID, "error", err)
				continue
			}

			that.broadcast(data)
		}
	}
}

// ServeHTTP upgrades the connection and serves it until the peer goes away.
func (that *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "ServeHTTP")

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := newClient(uuid.NewString(), conn, that.logger)
	if err = that.attach(c); err != nil {
		log.Error("failed to send initial state", "client_id", c.id, "error", err)
		_ = conn.Close()
		return
	}
	defer that.unregister(c)

	log.Info("websocket connection established", "client_id", c.id, "clients", that.Len())

	go c.writePump()
	c.readPump(r.Context(), that.dispatch)
}

// Len reports how many clients are connected.
func (that *Server) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.clients)
}

func (that *Server) dispatch(ctx context.Context, c *client, message *Message) {
	log := that.logger.With("method", "dispatch", "client_id", c.id, "action", message.Action)

	handler, ok := that.handlers[message.Action]
	if !ok {
		log.Debug("unknown action")
		that.sendError(c, message.Action, unknownAction(message.Action))
		return
	}

	if err := handler(ctx, c, message); err != nil {
		log.Debug("action failed", "error", err)
		that.sendError(c, message.Action, err)
	}
}

// attach queues the current snapshot and registers c under one lock, so no
// broadcast can reach c before its snapshot.
func (that *Server) attach(c *client) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.sendMessage(c, "game:state", that.manager.Snapshot()); err != nil {
		return err
	}

	that.clients[c.id] = c

	return nil
}

func (that *Server) unregister(c *client) {
	that.mu.Lock()
	delete(that.clients, c.id)
	that.mu.Unlock()

	c.close()
	that.logger.Info("websocket connection closed", "client_id", c.id)
}

func (that *Server) broadcast(data []byte) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	for _, c := range that.clients {
		if !c.enqueue(data) {
			that.logger.Warn("client is too slow, dropping event", "client_id", c.id)
		}
	}
}

func (that *Server) closeAll() {
	that.mu.RLock()
	defer that.mu.RUnlock()

	for _, c := range that.clients {
		c.close()
	}
}

func (that *Server) sendMessage(c *client, action string, payload any) error {
	data, err := encode(action, payload)
	if err != nil {
		return err
	}

	if !c.enqueue(data) {
		return fmt.Errorf("client %s send buffer is full", c.id)
	}

	return nil
}

func (that *Server) sendError(c *client, action string, cause error) {
	if err := that.sendMessage(c, action, errorPayload{Error: cause.Error()}); err != nil {
		that.logger.Error("failed to send error response", "client_id", c.id, "error", err)
	}
}

func encode(action string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	data, err := json.Marshal(Message{Action: action, Payload: body})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return data, nil
}
