package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	app "github.com/rocketscienceinc/disco-tictactoe/internal"
	"github.com/rocketscienceinc/disco-tictactoe/internal/config"
)

// main - is the entry point of the application. It loads .env, parses the command line and runs the chosen mode.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env file: %v\n", err)
	}

	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    "disco-tictactoe",
		Usage:   "two player tic-tac-toe with a disco party on every win",
		Version: app.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Value:   "config.yml",
				Usage:   "path to the config file; environment variables are used when it does not exist",
				Sources: cli.EnvVars("CONFIG_PATH"),
			},
		},
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "serve the page, JSON API, websocket and MCP endpoint over HTTP",
				Action: serve,
			},
			{
				Name:   "play",
				Usage:  "play in the terminal",
				Action: play,
			},
			{
				Name:   "mcp",
				Usage:  "serve the MCP tools on stdin and stdout",
				Action: mcpStdio,
			},
		},
	}
}

func serve(ctx context.Context, cmd *cli.Command) error {
	conf := initConfig(cmd.String("config"))

	return app.RunApp(ctx, initLogger(conf, os.Stdout), conf)
}

// play and mcp own stdout, so their logs go to stderr.
func play(ctx context.Context, cmd *cli.Command) error {
	conf := initConfig(cmd.String("config"))

	return app.RunTerminal(ctx, initLogger(conf, os.Stderr), conf, os.Stdin, os.Stdout)
}

func mcpStdio(ctx context.Context, cmd *cli.Command) error {
	conf := initConfig(cmd.String("config"))

	return app.RunMCPStdio(ctx, initLogger(conf, os.Stderr), conf)
}

// initialize config.
func initConfig(path string) *config.Config {
	if !filepath.IsAbs(path) {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}

		path = filepath.Join(baseDir, path)
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		conf, err := config.LoadEnv()
		if err != nil {
			panic(err)
		}

		return conf
	}

	return config.MustLoad(path)
}

// initialize logger.
func initLogger(conf *config.Config, out io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}
