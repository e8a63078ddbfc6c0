package main

import (
	"context"
	"flag"
	"fmt"
	"portfolio/config"
	"portfolio/database"
	"portfolio/logging"
	"time"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.LoadFromEnv(*configPath)
	if err != nil {
		logging.Fatal("failed to load config", "error", err)
	}
	logging.Setup(cfg.Log.Level)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if cfg.Database.Driver == config.DriverSQLite {
		// Opening the SQLite store applies its migrations.
		store, err := database.OpenSQLite(cfg.Database.SQLitePath)
		if err != nil {
			logging.Fatal("failed to migrate sqlite", "error", err)
		}
		store.Close()
		fmt.Println("SQLite schema is up to date")
		return
	}

	db, err := database.Connect(ctx, cfg.Database.URL)
	if err != nil {
		logging.Fatal("failed to connect", "error", err)
	}
	defer db.Close()

	applied, err := db.Migrate(ctx)
	if err != nil {
		logging.Fatal("migration failed", "error", err)
	}

	for _, name := range applied {
		fmt.Printf("✓ %s\n", name)
	}
	if len(applied) == 0 {
		fmt.Println("Nothing to migrate")
		return
	}
	fmt.Println("\nAll migrations completed!")
}
