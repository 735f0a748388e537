// Package api assembles the JSON API module and its route registration.
package api

import (
	"net/http"

	"github.com/JaimeStill/tasnif/internal/config"
	"github.com/JaimeStill/tasnif/internal/infrastructure"
	"github.com/JaimeStill/tasnif/pkg/middleware"
	"github.com/JaimeStill/tasnif/pkg/module"
)

// NewModule creates the API module with the classifier handler and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) *module.Module {
	runtime := NewRuntime(cfg, infra)

	mux := http.NewServeMux()
	registerRoutes(mux, runtime)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.RequestID())
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m
}
