package main

import (
	"encoding/json"
	"net/http"

	"github.com/JaimeStill/tasnif/internal/api"
	"github.com/JaimeStill/tasnif/internal/config"
	"github.com/JaimeStill/tasnif/internal/infrastructure"
	"github.com/JaimeStill/tasnif/pkg/middleware"
	"github.com/JaimeStill/tasnif/pkg/module"
	"github.com/JaimeStill/tasnif/web/app"
)

const appPath = "/app"

// Modules holds the mounted HTTP modules.
type Modules struct {
	API *module.Module
	App *module.Module
}

// NewModules creates the API and app modules.
func NewModules(infra *infrastructure.Infrastructure, cfg *config.Config) (*Modules, error) {
	apiModule := api.NewModule(cfg, infra)

	appModule, err := app.NewModule(
		appPath,
		infra.Classifier,
		cfg.API.MaxRequestSizeBytes(),
		infra.Logger.With("module", "app"),
	)
	if err != nil {
		return nil, err
	}
	appModule.Use(middleware.RequestID())
	appModule.Use(middleware.Logger(infra.Logger))

	return &Modules{
		API: apiModule,
		App: appModule,
	}, nil
}

// Mount registers every module on router.
func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.App)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, appPath+"/", http.StatusFound)
	})

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"status": "not ready"})
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
	})

	return router
}
