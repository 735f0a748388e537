package main

import (
	"errors"
	"time"

	"github.com/JaimeStill/tasnif/internal/config"
	"github.com/JaimeStill/tasnif/internal/infrastructure"
	"github.com/JaimeStill/tasnif/pkg/inference"
)

// Server wires infrastructure, modules, and the HTTP listener together.
type Server struct {
	infra     *infrastructure.Infrastructure
	modules   *Modules
	http      *httpServer
	inference inference.Config
}

// NewServer builds the server from a finalized config.
func NewServer(cfg *config.Config) (*Server, error) {
	infra := infrastructure.New(cfg)

	modules, err := NewModules(infra, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra)
	modules.Mount(router)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"env", cfg.Env(),
	)

	return &Server{
		infra:     infra,
		modules:   modules,
		http:      newHTTPServer(&cfg.Server, cfg.ShutdownTimeoutDuration(), router, infra.Logger),
		inference: cfg.Inference,
	}, nil
}

// Start binds the listener and registers the startup checks. Readiness is
// reported in the background once every check passes.
func (s *Server) Start() error {
	lc := s.infra.Lifecycle
	s.infra.Logger.Info("starting service")

	if err := s.http.Start(lc); err != nil {
		return err
	}

	lc.OnStartup("inference", func() error {
		if s.inference.Token == "" {
			return errors.New("no access token")
		}
		s.infra.Logger.Info(
			"inference endpoint configured",
			"model", s.inference.Model,
			"base_url", s.inference.BaseURL,
		)
		return nil
	})

	go func() {
		if err := lc.WaitForStartup(); err != nil {
			s.infra.Logger.Error("startup failed", "error", err)
			return
		}
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown cancels the lifecycle context and waits for shutdown hooks.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
