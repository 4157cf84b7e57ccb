package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/ironforge/footylab/internal/config"
	"github.com/ironforge/footylab/internal/dataset"
	"github.com/ironforge/footylab/internal/export"
)

const (
	appName    = "footygen"
	appVersion = "1.0.0"
)

func main() {
	log.Printf("=== %s v%s ===", appName, appVersion)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	var (
		seed     = flag.Int64("seed", cfg.Seed, "RNG seed (0 derives one from the clock)")
		numClubs = flag.Int("clubs", cfg.NumClubs, "Number of clubs to generate (even, 2-25)")
		season   = flag.String("season", cfg.Season, "Season to simulate (e.g. 2024/25)")
		outDir   = flag.String("out", cfg.DataDir, "Output directory for CSV artifacts")
	)

	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	start := time.Now()
	ds, err := dataset.Generate(dataset.Params{
		NumClubs: *numClubs,
		Season:   *season,
		Seed:     *seed,
	}, rng)
	if err != nil {
		log.Fatalf("generate dataset: %v", err)
	}

	if err := export.WriteAll(*outDir, ds); err != nil {
		log.Fatalf("write artifacts: %v", err)
	}

	log.Printf("✓ Generated %s in %s", ds.Season, time.Since(start).Round(time.Millisecond))
	log.Printf("  run:       %s (seed %d)", ds.RunID, ds.Seed)
	log.Printf("  clubs:     %d", len(ds.Clubs))
	log.Printf("  players:   %d first team, %d youth", len(ds.Players), len(ds.Youth))
	log.Printf("  staff:     %d", len(ds.Staff))
	log.Printf("  matches:   %d", len(ds.Fixtures))
	log.Printf("  transfers: %d", len(ds.Transfers))
	log.Printf("  artifacts: %s", *outDir)
}
