package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/tasnif/pkg/inference"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvTasnifEnv             = "TASNIF_ENV"
	EnvTasnifShutdownTimeout = "TASNIF_SHUTDOWN_TIMEOUT"
	EnvTasnifVersion         = "TASNIF_VERSION"

	// EnvInferenceToken is the fixed key the access token is read from.
	EnvInferenceToken = "HF_TOKEN"
)

// ErrMissingToken is returned by Load when no inference access token is configured.
var ErrMissingToken = errors.New("missing inference token: set " + EnvInferenceToken + " or inference.token in " + BaseConfigFile)

var inferenceEnv = &inference.Env{
	BaseURL: "TASNIF_INFERENCE_BASE_URL",
	Model:   "TASNIF_INFERENCE_MODEL",
	Token:   EnvInferenceToken,
	Timeout: "TASNIF_INFERENCE_TIMEOUT",
}

// Config is the root configuration for the tasnif service.
type Config struct {
	Server          ServerConfig     `toml:"server"`
	API             APIConfig        `toml:"api"`
	Inference       inference.Config `toml:"inference"`
	ShutdownTimeout string           `toml:"shutdown_timeout"`
	Version         string           `toml:"version"`
}

// Env returns the TASNIF_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvTasnifEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load builds the configuration from config.toml, then the
// config.<TASNIF_ENV>.toml overlay, then environment variables, then
// defaults. Either file may be absent. A missing inference token is fatal
// and reported as ErrMissingToken.
func Load() (*Config, error) {
	cfg := &Config{}

	for _, path := range []string{BaseConfigFile, overlayPath()} {
		if path == "" {
			continue
		}
		layer, err := load(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		cfg.Merge(layer)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}
	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.API.Merge(&overlay.API)
	c.Inference.Merge(&overlay.Inference)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Inference.Finalize(inferenceEnv); err != nil {
		return fmt.Errorf("inference: %w", err)
	}
	if c.Inference.Token == "" {
		return ErrMissingToken
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvTasnifShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvTasnifVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("parse line %d column %d: %w", row, col, err)
		}
		return nil, fmt.Errorf("parse: %w", err)
	}
	return &cfg, nil
}

func overlayPath() string {
	env := os.Getenv(EnvTasnifEnv)
	if env == "" {
		return ""
	}
	return fmt.Sprintf(OverlayConfigPattern, env)
}
