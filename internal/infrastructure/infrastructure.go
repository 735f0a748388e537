// Package infrastructure provides core service initialization for application startup.
// It assembles the dependencies every module shares: lifecycle coordination,
// logging, and the classifier backed by the hosted inference endpoint.
package infrastructure

import (
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/JaimeStill/tasnif/internal/classifier"
	"github.com/JaimeStill/tasnif/internal/config"
	"github.com/JaimeStill/tasnif/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all modules.
type Infrastructure struct {
	Lifecycle  *lifecycle.Coordinator
	Logger     *slog.Logger
	Classifier classifier.System
}

// New creates an Infrastructure from the application configuration.
// The inference client is not constructed here; the classifier builds it on first use.
func New(cfg *config.Config) *Infrastructure {
	logger := NewLogger(os.Stderr)

	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Classifier: classifier.New(
			classifier.InferenceFactory(&cfg.Inference),
			logger,
		),
	}
}

// NewLogger returns a text logger when w is a terminal and a JSON logger otherwise.
func NewLogger(w io.Writer) *slog.Logger {
	if f, ok := w.(*os.File); ok {
		fd := f.Fd()
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return slog.New(slog.NewTextHandler(w, nil))
		}
	}
	return slog.New(slog.NewJSONHandler(w, nil))
}
