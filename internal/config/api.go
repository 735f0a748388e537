package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/tasnif/pkg/formatting"
	"github.com/JaimeStill/tasnif/pkg/middleware"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "TASNIF_CORS_ENABLED",
	Origins:          "TASNIF_CORS_ORIGINS",
	AllowedMethods:   "TASNIF_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "TASNIF_CORS_ALLOWED_HEADERS",
	AllowCredentials: "TASNIF_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "TASNIF_CORS_MAX_AGE",
}

// APIConfig holds API routing, request limits, and CORS settings.
type APIConfig struct {
	BasePath       string                `toml:"base_path"`
	MaxRequestSize string                `toml:"max_request_size"`
	CORS           middleware.CORSConfig `toml:"cors"`
}

// MaxRequestSizeBytes returns MaxRequestSize in bytes.
func (c *APIConfig) MaxRequestSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxRequestSize)
	if err != nil {
		return 64 * 1024
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS config.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxRequestSize != "" {
		c.MaxRequestSize = overlay.MaxRequestSize
	}

	c.CORS.Merge(&overlay.CORS)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxRequestSize == "" {
		c.MaxRequestSize = "64KB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("TASNIF_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("TASNIF_API_MAX_REQUEST_SIZE"); v != "" {
		c.MaxRequestSize = v
	}
}

func (c *APIConfig) validate() error {
	if _, err := formatting.ParseBytes(c.MaxRequestSize); err != nil {
		return fmt.Errorf("invalid max_request_size: %w", err)
	}
	return nil
}
