//go:build ebiten

package main

import (
	"flag"
	"log"
	"os"

	"mad-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

func main() {
	os.Exit(report(os.Stderr, run()))
}

func run() error {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		return err
	}

	game, err := app.NewGame(cfg, log.Default())
	if err != nil {
		return err
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.FPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
