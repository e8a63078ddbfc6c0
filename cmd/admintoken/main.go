// Command admintoken prints a bearer token for GET /api/messages.
package main

import (
	"flag"
	"fmt"
	"portfolio/config"
	"portfolio/logging"
	"portfolio/middleware"
	"time"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.Fatal("failed to load config", "error", err)
	}
	if err := config.ApplyEnv(cfg); err != nil {
		logging.Fatal("failed to load config", "error", err)
	}

	token, err := middleware.NewAdminToken(cfg.Auth.AdminSecret, *ttl, time.Now())
	if err != nil {
		logging.Fatal("failed to issue token", "error", err, "hint", "set ADMIN_TOKEN_SECRET")
	}
	fmt.Println(token)
}
