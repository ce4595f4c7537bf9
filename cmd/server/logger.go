package main

import (
	"log/slog"

	"github.com/lelec0/fintech-api/internal/config"
	"github.com/lelec0/fintech-api/internal/platform/logger"
)

// setupLogger configures the application's structured logger based on
// the provided configuration and sets it as the default logger.
func setupLogger(cfg *config.Config) (*slog.Logger, error) {
	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, err
	}

	return log, nil
}
