package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/rocketscienceinc/quantum-gomoku/internal/config"
	"github.com/rocketscienceinc/quantum-gomoku/internal/gomoku"
	"github.com/rocketscienceinc/quantum-gomoku/internal/logging"
	"github.com/rocketscienceinc/quantum-gomoku/internal/random"
	"github.com/rocketscienceinc/quantum-gomoku/internal/tui"
)

// main - plays a local hot-seat game in the terminal.
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "quantum-gomoku: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	baseDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	conf, err := config.Load(filepath.Join(baseDir, "config.yml"))
	if err != nil {
		return err
	}

	logOutput, closeLog, err := openLog(conf.TUILogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	logger := logging.New(logOutput, conf.LogLevel)

	source, err := random.NewFactory(conf.RandomSeed)()
	if err != nil {
		return fmt.Errorf("failed to create random source: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := tui.New(logger, screen, gomoku.NewSession(uuid.NewString(), source))

	return app.Run(ctx)
}

// openLog - the screen owns the terminal, so logs go to a file or nowhere.
func openLog(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, func() { _ = file.Close() }, nil
}
