// Package app serves the classification page: a single form that submits a
// sentence and renders the classifier's outcome inline.
package app

import (
	"embed"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/tasnif/internal/classifier"
	"github.com/JaimeStill/tasnif/pkg/module"
	"github.com/JaimeStill/tasnif/pkg/web"
)

//go:embed layouts views dist
var assets embed.FS

const layout = "app"

var (
	classifyView = web.ViewDef{
		Template: "classify.html",
		Title:    "Arabic Hate Speech Classifier",
		Bundle:   "app",
	}
	notFoundView = web.ViewDef{
		Template: "not-found.html",
		Title:    "Not Found",
	}
)

// NewModule creates the app module mounted at basePath.
func NewModule(
	basePath string,
	sys classifier.System,
	maxBodySize int64,
	logger *slog.Logger,
) (*module.Module, error) {
	ts, err := web.NewTemplateSet(assets, "layouts/*.html", "views", basePath, classifyView, notFoundView)
	if err != nil {
		return nil, err
	}

	h := newHandler(sys, ts, maxBodySize, logger)

	router := http.NewServeMux()
	router.HandleFunc("GET /{$}", h.page)
	router.HandleFunc("POST /{$}", h.classify)
	router.Handle("GET /dist/", web.DistServer(assets, "dist", "/dist/"))
	router.Handle("GET /", ts.ErrorHandler(layout, notFoundView, http.StatusNotFound))

	return module.New(basePath, router), nil
}
