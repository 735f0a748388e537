package main

import (
	"io"
	"log/slog"

	"github.com/JaimeStill/tasnif/internal/classifier"
	"github.com/JaimeStill/tasnif/internal/config"
	"github.com/JaimeStill/tasnif/internal/infrastructure"
)

type commandContext struct {
	loadConfig func() (*config.Config, error)
	newLogger  func(w io.Writer) *slog.Logger
}

func newCommandContext() *commandContext {
	return &commandContext{
		loadConfig: config.Load,
		newLogger:  infrastructure.NewLogger,
	}
}

func (c *commandContext) classifier(stderr io.Writer) (classifier.System, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}

	return classifier.New(
		classifier.InferenceFactory(&cfg.Inference),
		c.newLogger(stderr),
	), nil
}
