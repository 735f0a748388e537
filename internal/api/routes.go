package api

import (
	"net/http"

	"github.com/JaimeStill/tasnif/pkg/routes"
)

func registerRoutes(mux *http.ServeMux, runtime *Runtime) {
	routes.Register(
		mux,
		runtime.Classifier.Handler(runtime.MaxRequestSize).Routes(),
	)
}
