// Command seeder provisions departments and staff from a YAML declaration.
// It is intended for development and demo environments, not production.
//
// Flags:
//
//	--seed-config  path to the seed YAML file (required)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/internhub/intake-backend/internal/adapter/postgres"
	"github.com/internhub/intake-backend/internal/app"
	"github.com/internhub/intake-backend/internal/config"
	"github.com/internhub/intake-backend/internal/seeder"
)

func main() {
	seedConfigFlag := flag.String("seed-config", "", "path to seed YAML file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	seedCfg, err := seeder.LoadConfig(*seedConfigFlag)
	if err != nil {
		logger.Error("load seed config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if err := seeder.New(pool, logger).Run(ctx, seedCfg); err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seeding completed", slog.Int("departments", len(seedCfg.Departments)))
}
