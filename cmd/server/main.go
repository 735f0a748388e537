package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/JaimeStill/tasnif/internal/config"
	"github.com/JaimeStill/tasnif/internal/infrastructure"
)

func main() {
	logger := infrastructure.NewLogger(os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		if errors.Is(err, config.ErrMissingToken) {
			logger.Error("inference token not configured", "key", config.EnvInferenceToken, "error", err)
		} else {
			logger.Error("config load failed", "error", err)
		}
		os.Exit(1)
	}

	srv, err := NewServer(cfg)
	if err != nil {
		logger.Error("server init failed", "error", err)
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		logger.Error("server start failed", "error", err)
		os.Exit(1)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	if err := srv.Shutdown(cfg.ShutdownTimeoutDuration()); err != nil {
		logger.Error("shutdown failed", "error", err)
		os.Exit(1)
	}

	logger.Info("tasnif stopped")
}
