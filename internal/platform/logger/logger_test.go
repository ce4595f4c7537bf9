// Package logger_test contains tests for the logger package
package logger_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/lelec0/fintech-api/internal/config"
	"github.com/lelec0/fintech-api/internal/platform/logger"
)

func TestSetupReturnsLogger(t *testing.T) {
	levels := []string{"debug", "info", "warn", "error", "DEBUG", "Info"}

	for _, level := range levels {
		log, err := logger.Setup(config.ServerConfig{LogLevel: level})
		if err != nil {
			t.Fatalf("Setup(%q) returned unexpected error: %v", level, err)
		}
		if log == nil {
			t.Fatalf("Setup(%q) returned nil logger", level)
		}
	}
}

func TestSetupInvalidLevelFallsBackToInfo(t *testing.T) {
	log, err := logger.Setup(config.ServerConfig{LogLevel: "verbose"})
	if err != nil {
		t.Fatalf("Setup with invalid level returned error: %v", err)
	}
	if log == nil {
		t.Fatal("Setup with invalid level returned nil logger")
	}

	ctx := context.Background()
	if !log.Enabled(ctx, slog.LevelInfo) {
		t.Error("Expected info level to be enabled after fallback")
	}
	if log.Enabled(ctx, slog.LevelDebug) {
		t.Error("Expected debug level to be disabled after fallback")
	}
}

func TestWithContextRoundTrip(t *testing.T) {
	stored := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := logger.WithContext(context.Background(), stored)

	if got := logger.FromContext(ctx); got != stored {
		t.Error("FromContext did not return the logger stored with WithContext")
	}
}

func TestFromContextFallsBackToDefault(t *testing.T) {
	if got := logger.FromContext(context.Background()); got != slog.Default() {
		t.Error("Expected FromContext to fall back to the default logger")
	}
}

func TestFromContextOrDefault(t *testing.T) {
	def := slog.New(slog.NewTextHandler(io.Discard, nil))

	if got := logger.FromContextOrDefault(context.Background(), def); got != def {
		t.Error("Expected the provided default when no logger is stored")
	}

	stored := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := logger.WithContext(context.Background(), stored)
	if got := logger.FromContextOrDefault(ctx, def); got != stored {
		t.Error("Expected the stored logger to take precedence over the default")
	}
}
