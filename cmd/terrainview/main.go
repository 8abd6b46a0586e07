// Package main is the entry point for the terrain preview tool.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/verdictzero/GANDER-B/internal/app"
	"github.com/verdictzero/GANDER-B/internal/config"
	"github.com/verdictzero/GANDER-B/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== GANDER-B Terrain Preview ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to create preview session", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("preview error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("preview closed normally")
}
