package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/clinicon/clinicon-ai/internal/config"
	"github.com/clinicon/clinicon-ai/internal/intent"
	"github.com/clinicon/clinicon-ai/internal/llm"
	"github.com/clinicon/clinicon-ai/internal/logger"
	"github.com/clinicon/clinicon-ai/internal/repl"
	"github.com/clinicon/clinicon-ai/internal/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd())

	log, err := newLogger(cfg, interactive)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	provider, err := llm.NewProvider(cfg)
	if err != nil {
		return err
	}
	parser := intent.NewParser(provider, cfg.Model, cfg.Temperature, log)

	// An interrupt ends the process with the pending request; the TUI reads
	// Ctrl+C as a key instead.
	ctx := context.Background()

	log.Debug("starting",
		zap.String("provider", provider.Name()),
		zap.String("model", cfg.Model),
		zap.Bool("interactive", interactive),
	)

	if interactive {
		app := tui.NewApp(ctx, parser, provider.Name(), cfg.Model, log)
		_, err := tea.NewProgram(app).Run()
		return err
	}

	return repl.New(parser, log).Run(ctx, os.Stdin, os.Stdout)
}

// newLogger keeps log output off the terminal while the TUI owns it.
func newLogger(cfg *config.Config, interactive bool) (*zap.Logger, error) {
	if interactive && cfg.Log.File == "" {
		return zap.NewNop(), nil
	}
	return logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
}
