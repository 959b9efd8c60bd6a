// cmd/termgame/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-sphere-pop/internal/app"
	"go-sphere-pop/internal/config"
	"go-sphere-pop/internal/event"
	"go-sphere-pop/internal/metrics"
	"go-sphere-pop/internal/terminal"

	"github.com/gdamore/tcell/v2"
)

func main() {
	flags := config.RegisterFlags(flag.CommandLine)
	logPath := flag.String("log", "", "write logs to this file; by default logs are discarded while the screen is active")
	flag.Parse()

	// Вывод log поверх экрана tcell ломает картинку
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	} else {
		log.SetOutput(io.Discard)
	}

	cfg, err := flags.Resolve()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	game, err := app.NewGame(cfg)
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	collector := metrics.NewCollector()
	collector.Attach(game.EventDispatcher)
	metrics.Serve(flags.DebugAddr, collector)

	if cfg.Sound {
		pops, err := newPopSpeaker(game.Variant)
		if err != nil {
			// без звука играть можно
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer pops.Close()
			game.EventDispatcher.Subscribe(event.TargetPopped, pops)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	runner, err := terminal.NewRunner(screen, game)
	if err != nil {
		screen.Fini()
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runErr := runner.Run(ctx)
	screen.Fini()

	log.SetOutput(os.Stderr)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Println(runErr)
	}
	log.Printf("session finished: %s", game.Stats())
}
