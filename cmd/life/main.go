//go:build !ebiten && !sdl

package main

import (
	"flag"
	"io"
	"log"
	"os"

	"mad-life/internal/app"
	"mad-life/internal/core"
	"mad-life/internal/term"
)

func main() {
	os.Exit(report(os.Stderr, run()))
}

func run() error {
	cfg := app.NewConfig()
	// One terminal cell per grid cell unless asked otherwise.
	cfg.CellSize = 1
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		return err
	}

	scr, err := term.Open(cfg.CellSize)
	if err != nil {
		return err
	}
	defer scr.Close()

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	if cfg.File == "" {
		w, h := scr.SurfaceSize()
		if !explicit["width"] {
			cfg.Width = w
		}
		if !explicit["height"] {
			cfg.Height = h
		}
	}

	// The terminal owns stdout while the board is shown.
	engine, err := app.NewEngine(cfg, scr, scr, core.NewFrameLimiter(cfg.FPS), log.New(io.Discard, "", 0))
	if err != nil {
		return err
	}
	return engine.Run()
}
