package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/thicketgame/engine/internal/config"
	"github.com/thicketgame/engine/internal/core/loop"
	"github.com/thicketgame/engine/internal/game"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config. An explicitly named file must exist; the implicit
	// default quietly falls back to built-in settings.
	flagPath := flag.String("config", "", "path to the TOML config file")
	flag.Parse()

	path := *flagPath
	explicit := path != ""
	if !explicit {
		if p := os.Getenv("THICKET_CONFIG"); p != "" {
			path, explicit = p, true
		} else {
			path = "thicket.toml"
		}
	}
	cfg, err := config.Load(path)
	switch {
	case err == nil:
	case errors.Is(err, os.ErrNotExist) && !explicit:
		cfg = config.Defaults()
	default:
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger. It writes to a file: the terminal belongs to the
	// game screen while we run.
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Build the game. This takes over the terminal.
	g, err := game.New(cfg, log)
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}

	// 4. Run the frame loop until a quit key or a signal.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-shutdownCh
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
		cancel()
	}()

	loop.NewDriver(cfg.Loop.FPS, log).Run(ctx, g)

	// 5. Restore the terminal.
	g.Clean()
	return nil
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
	}

	return zapCfg.Build()
}
