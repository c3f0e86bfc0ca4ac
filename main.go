package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/rook-computer/duelicons/internal/app"
	"github.com/rook-computer/duelicons/internal/render"
	"github.com/rook-computer/duelicons/internal/state"
	"github.com/rook-computer/duelicons/internal/system"
)

func main() {
	fmt.Println("Card Duel icon generator starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := app.NewLogrusLogger(os.Stderr)
	cfg := app.DefaultConfig()
	store := state.NewStore()

	a := app.New(cfg, store, render.NewLogoRenderer(), system.ExecRunner{Logger: logger})
	a.Logger = logger

	if err := a.Run(ctx); err != nil {
		fmt.Println("icon generation error:", err)
		stop()
		os.Exit(1)
	}

	dir, err := filepath.Abs(cfg.IconDir)
	if err != nil {
		dir = cfg.IconDir
	}
	snap := store.Snapshot()
	logger.Infof("main", "%d files written, icns phase=%s", len(snap.Artifacts), snap.Phase)
	fmt.Println("Generated icons in", dir)
}
