//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifegrid/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	game, err := app.New(cfg)
	if err != nil {
		log.Fatalf("start: %v", err)
	}
	view, _ := game.Engine().Viewport()
	log.Printf("grid %dx%d, %dpx cells, interval %v", view.Rows, view.Cols, cfg.CellSize, cfg.Interval)

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("life - generation 1")
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
