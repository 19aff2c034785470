package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"lifegrid/internal/app"
	"lifegrid/internal/core"
	"lifegrid/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ui, err := term.New(screen, cfg, core.TickerScheduler{})
	if err != nil {
		screen.Fini()
		log.Fatalf("start: %v", err)
	}
	err = ui.Run(ctx)
	screen.Fini()
	if err != nil && err != context.Canceled {
		log.Fatal(err)
	}
}
