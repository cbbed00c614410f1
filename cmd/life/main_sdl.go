//go:build sdl && !ebiten

package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"mad-life/internal/app"
	"mad-life/internal/core"
	"mad-life/internal/sdlwin"
)

func init() {
	// SDL must be driven from the main OS thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(report(os.Stderr, run()))
}

func run() error {
	cfg := app.NewConfig()
	if err := cfg.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		return err
	}

	win, err := sdlwin.Open(cfg.Title, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer func() {
		if err := win.Close(); err != nil {
			log.Print(err)
		}
	}()

	limiter := core.NewFrameLimiter(cfg.FPS)
	limiter.SetSleeper(sdlwin.Delay)

	engine, err := app.NewEngine(cfg, win, win, limiter, log.Default())
	if err != nil {
		return err
	}
	return engine.Run()
}
