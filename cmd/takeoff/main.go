// Package main - Entry point for the takeoff (state provider) service
package main

import (
	"flag"

	"go.uber.org/zap"

	"takeoff-cost/api/takeoffapi"
	"takeoff-cost/internal/config"
	"takeoff-cost/internal/logging"
)

const version = "1.0.0"

func main() {
	cfg := config.LoadEnv()

	addr := flag.String("addr", cfg.Takeoff.Address, "Listen address")
	flag.Parse()

	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Error("failed to initialize logging", zap.Error(err))
	}
	defer logging.Sync()

	server := takeoffapi.NewServer(version, takeoffapi.NewMockStore())

	logging.Info("starting takeoff service",
		zap.String("version", version),
		zap.String("addr", *addr),
	)

	if err := server.ListenAndServe(*addr); err != nil {
		logging.Error("server stopped", zap.Error(err))
	}
}
