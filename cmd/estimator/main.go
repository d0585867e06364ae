// Package main - Entry point for the estimator service
package main

import (
	"flag"
	"time"

	"go.uber.org/zap"

	"takeoff-cost/adapters/takeoffclient"
	"takeoff-cost/api/estimator"
	"takeoff-cost/core/estimate"
	"takeoff-cost/core/pricing"
	"takeoff-cost/internal/config"
	"takeoff-cost/internal/logging"
)

const version = "1.0.0"

func main() {
	cfg := config.LoadEnv()

	addr := flag.String("addr", cfg.Estimator.Address, "Listen address")
	takeoffURL := flag.String("takeoff-url", cfg.Takeoff.BaseURL, "Takeoff service base URL")
	tablePath := flag.String("pricing", cfg.Pricing.TablePath, "HCL pricing table file (empty uses built-in table)")
	flag.Parse()

	if err := logging.Initialize(cfg.Logging); err != nil {
		logging.Error("failed to initialize logging", zap.Error(err))
	}
	defer logging.Sync()

	table := pricing.Default()
	if *tablePath != "" {
		loaded, err := pricing.LoadHCL(*tablePath)
		if err != nil {
			logging.Error("failed to load pricing table, using built-in", zap.Error(err))
		} else {
			table = loaded
			logging.Info("loaded pricing table", zap.String("path", *tablePath), zap.Int("rules", table.Len()))
		}
	}

	clientCfg := takeoffclient.DefaultConfig(*takeoffURL)
	clientCfg.Timeout = time.Duration(cfg.Estimator.FetchTimeoutSeconds) * time.Second
	clientCfg.RetryCount = cfg.Estimator.FetchRetries
	clientCfg.RetryDelay = time.Duration(cfg.Estimator.FetchRetryDelayMs) * time.Millisecond

	handler := estimator.NewHandler(
		takeoffclient.New(clientCfg),
		estimate.New(table),
		clientCfg.Timeout,
	)
	server := estimator.NewServer(version, handler, cfg.Estimator.WebhookSecret)

	logging.Info("starting estimator service",
		zap.String("version", version),
		zap.String("addr", *addr),
		zap.String("takeoff_url", *takeoffURL),
	)

	if err := server.ListenAndServe(*addr); err != nil {
		logging.Error("server stopped", zap.Error(err))
	}
}
