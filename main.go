package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"roomcrawl/internal/config"
	"roomcrawl/internal/game"
	"roomcrawl/internal/logger"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file (defaults apply when empty)")
	seed := flag.String("seed", "", "Seed phrase; the same phrase replays the same dungeon")
	flag.Parse()

	if err := run(*configPath, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, seed string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if seed != "" {
		cfg.Game.Seed = seed
	}

	// The terminal belongs to tcell; logs only go to log.file.
	log, closer, err := logger.New(cfg.Log, io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return game.New(screen, game.SettingsFrom(cfg.Game, log)).Run(ctx)
}
