package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/osse101/GildedRose_Go/internal/config"
	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/item"
	"github.com/osse101/GildedRose_Go/internal/logger"
	"github.com/osse101/GildedRose_Go/internal/nightly"
)

// output is what one run prints to stdout
type output struct {
	Items  []item.State          `json:"items"`
	Report *domain.NightlyReport `json:"report"`
}

func main() {
	if err := run(context.Background(), os.Stdout); err != nil {
		log.Fatalf("nightly update failed: %v", err)
	}
}

func run(ctx context.Context, w io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		logger.Warn(warning)
	}

	var opts []item.Option
	if cfg.EnableConjured {
		opts = append(opts, item.WithConjured())
	}
	catalog := item.NewCatalog(opts...)

	ctx = logger.WithRunID(ctx, logger.GenerateRunID())

	loader := item.NewLoader()
	stock, err := loader.Load(ctx, cfg.StockFile)
	if err != nil {
		return err
	}
	items, err := loader.Build(ctx, catalog, stock, cfg.StrictValidation)
	if err != nil {
		return err
	}

	report := nightly.NewService().RunOnce(ctx, items)

	out := output{Items: make([]item.State, 0, len(items)), Report: report}
	for _, it := range items {
		out.Items = append(out.Items, it.Snapshot())
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
