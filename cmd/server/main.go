// Package main is the entry point for the charger-sizing API server.
package main

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"charger-sizing/api"
	"charger-sizing/internal/config"
	"charger-sizing/internal/logging"
)

const version = "0.1.0"

func main() {
	// Optional .env for local development; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	cfgPath := flag.String("config", config.DefaultPath(), "config file path")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		logging.Error("loading config", zap.Error(err))
		os.Exit(1)
	}
	config.Set(cfg)

	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Error("initializing logging", zap.Error(err))
	}
	defer logging.Sync()

	listen := cfg.Server.Addr
	if *addr != "" {
		listen = *addr
	}
	if env := os.Getenv("CHARGER_SIZING_ADDR"); env != "" && *addr == "" {
		listen = env
	}

	server := api.NewServer(version, cfg.Parameters)
	logging.Info("starting API server", zap.String("addr", listen), zap.String("version", version))
	if err := server.Run(listen); err != nil {
		logging.Error("server stopped", zap.Error(err))
		os.Exit(1)
	}
}
