package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"maps"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"lifegrid/internal/app"
	"lifegrid/internal/life"
	"lifegrid/internal/survey"
)

func main() {
	steps := flag.Int("steps", 500, "maximum generations to simulate per preset")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel preset runs")
	rows := flag.Int("rows", 50, "visible grid rows")
	cols := flag.Int("cols", 50, "visible grid columns")
	backing := flag.Int("backing", 1, "backing grid multiplier (1 or 3)")
	only := flag.String("presets", "", "comma-separated presets to run (default all)")
	byPeak := flag.Bool("by-peak", false, "sort output by peak population")
	var overrides app.KVList
	flag.Var(&overrides, "set", "engine override in key=value form (repeatable)")
	flag.Parse()

	kv := map[string]string{
		"rows":    strconv.Itoa(*rows),
		"cols":    strconv.Itoa(*cols),
		"backing": strconv.Itoa(*backing),
	}
	maps.Copy(kv, overrides.Map())
	cfg := life.FromMap(kv)

	names := life.PresetNames()
	if *only != "" {
		names = strings.Split(*only, ",")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, err := survey.Run(ctx, names, survey.Options{Config: cfg, Steps: *steps, Workers: *workers})
	if err != nil {
		log.Fatalf("survey: %v", err)
	}
	if *byPeak {
		survey.SortByPeak(results)
	}

	fmt.Printf("%d presets on a %dx%d grid, up to %d steps (%v)\n", len(results), cfg.Rows, cfg.Cols, *steps, time.Since(start).Round(time.Millisecond))
	for _, r := range results {
		fmt.Println(r)
	}
}
