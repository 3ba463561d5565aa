package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/disco-tictactoe/internal/config"
	"github.com/rocketscienceinc/disco-tictactoe/internal/events"
	"github.com/rocketscienceinc/disco-tictactoe/internal/presentation"
	"github.com/rocketscienceinc/disco-tictactoe/internal/storage"
	"github.com/rocketscienceinc/disco-tictactoe/internal/terminal"
	"github.com/rocketscienceinc/disco-tictactoe/internal/usecase"
	"github.com/rocketscienceinc/disco-tictactoe/transport/mcp"
	"github.com/rocketscienceinc/disco-tictactoe/transport/rest"
	"github.com/rocketscienceinc/disco-tictactoe/transport/websocket"
)

const Version = "1.0.0"

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - serves the page, the JSON API, the websocket and MCP over HTTP.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := withSignals(ctx, log)
	defer cancel()

	broadcaster := events.NewBroadcaster(logger)

	publisher, closePublisher, err := newPublisher(ctx, log, conf, broadcaster)
	if err != nil {
		return err
	}
	defer closePublisher()

	manager := usecase.NewGameManager(logger, publisher, presentationSettings(conf))

	wsServer := websocket.New(logger, manager, broadcaster)
	go wsServer.Run(ctx)

	mcpServer := mcp.New(logger, manager, Version)

	restServer := rest.New(logger, manager, map[string]http.Handler{
		"/ws":          wsServer,
		"/mcp":         mcpServer,
		"GET /sounds/": rest.Sounds(conf.Presentation.SoundsDir),
	})

	log.Info("Starting HTTP server", "port", conf.HTTPPort)
	if err = restServer.Start(ctx, conf.HTTPPort); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// RunTerminal - plays a local game on in and out. Events still reach redis
// when it is enabled.
func RunTerminal(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	ctx, cancel := withSignals(ctx, log)
	defer cancel()

	publisher, closePublisher, err := newPublisher(ctx, log, conf, events.NewBroadcaster(logger))
	if err != nil {
		return err
	}
	defer closePublisher()

	manager := usecase.NewGameManager(logger, publisher, presentationSettings(conf))

	if err = terminal.New(logger, manager, in, out).Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("terminal error: %w", err)
	}

	return nil
}

// RunMCPStdio - serves the MCP tools on stdin and stdout.
func RunMCPStdio(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := withSignals(ctx, log)
	defer cancel()

	publisher, closePublisher, err := newPublisher(ctx, log, conf, events.NewBroadcaster(logger))
	if err != nil {
		return err
	}
	defer closePublisher()

	manager := usecase.NewGameManager(logger, publisher, presentationSettings(conf))

	log.Info("Starting MCP stdio server")

	return mcp.New(logger, manager, Version).ServeStdio()
}

func withSignals(ctx context.Context, log *slog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigs)

		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}

// newPublisher always includes the in-process broadcaster and adds redis
// when it is enabled in the config.
func newPublisher(
	ctx context.Context, log *slog.Logger, conf *config.Config, broadcaster *events.Broadcaster,
) (events.Publisher, func(), error) {
	if !conf.Redis.Enabled {
		return broadcaster, func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	client, err := storage.NewRedisClient(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis: %w", err)
	}

	log.Info("Publishing events to redis", "addr", redisAddrString, "channel", conf.Redis.Channel)

	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Error("could not close redis client", "error", err)
		}
	}

	return events.Multi{broadcaster, events.NewRedisPublisher(client, conf.Redis.Channel)}, closeFn, nil
}

func presentationSettings(conf *config.Config) presentation.Settings {
	return presentation.Settings{
		SoundEnabled: conf.Presentation.SoundEnabled,
		DiscoMode:    conf.Presentation.DiscoMode,
	}
}
