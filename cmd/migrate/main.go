// Command migrate creates the database schema and adds the course columns
// that older databases lack. It is safe to run repeatedly.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/sbilibin2017/gw-lesson-planner/internal/config"
	"github.com/sbilibin2017/gw-lesson-planner/internal/database"
	"github.com/sbilibin2017/gw-lesson-planner/internal/logger"
)

func main() {
	configPath := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogEncoding); err != nil {
		return err
	}
	defer logger.Sync()

	db, err := database.Open(ctx, database.Options{Driver: cfg.DBDriver, DSN: cfg.DBDSN})
	if err != nil {
		return fmt.Errorf("database connection error: %w", err)
	}
	defer db.Close()

	if err := database.CreateSchema(ctx, db); err != nil {
		return err
	}
	logger.Log.Infow("schema ready", "driver", cfg.DBDriver)

	added, err := database.AddMissingColumns(ctx, db)
	if err != nil {
		return err
	}
	for _, column := range added {
		logger.Log.Infow("added column", "table", "courses", "column", column)
	}
	if len(added) == 0 {
		logger.Log.Info("no columns to add")
	}
	return nil
}
