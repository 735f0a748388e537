package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/JaimeStill/tasnif/internal/config"
	"github.com/JaimeStill/tasnif/pkg/lifecycle"
)

type httpServer struct {
	http   *http.Server
	logger *slog.Logger
	drain  time.Duration
}

func newHTTPServer(cfg *config.ServerConfig, drain time.Duration, handler http.Handler, logger *slog.Logger) *httpServer {
	return &httpServer{
		http: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeoutDuration(),
			WriteTimeout: cfg.WriteTimeoutDuration(),
		},
		logger: logger.With("system", "http"),
		drain:  drain,
	}
}

// Start binds the listener so bind failures reach the caller, then serves
// in the background. The http startup check fails if Serve exits before
// shutdown begins.
func (s *httpServer) Start(lc *lifecycle.Coordinator) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.http.Addr, err)
	}
	addr := ln.Addr().String()

	serveErr := make(chan error, 1)
	go func() {
		err := s.http.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		if err != nil {
			s.logger.Error("server error", "error", err)
		}
		serveErr <- err
	}()

	lc.OnStartup("http", func() error {
		select {
		case err := <-serveErr:
			return fmt.Errorf("serve %s: %w", addr, cmp.Or(err, http.ErrServerClosed))
		default:
		}
		s.logger.Info("server listening", "addr", addr)
		return nil
	})

	lc.OnShutdown("http", func() {
		s.logger.Info("draining connections", "timeout", s.drain)

		ctx, cancel := context.WithTimeout(context.Background(), s.drain)
		defer cancel()

		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error("server shutdown error", "error", err)
			return
		}
		s.logger.Info("server shutdown complete")
	})

	return nil
}
