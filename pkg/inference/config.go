package inference

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// Config holds connection settings for a hosted OpenAI-compatible
// chat-completion endpoint. Generation parameters are not configurable
// here; callers pass them per request through Options.
type Config struct {
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
	Token   string `toml:"token"`
	Timeout string `toml:"timeout"`
}

// Env maps inference config fields to environment variable names for override injection.
type Env struct {
	BaseURL string
	Model   string
	Token   string
	Timeout string
}

// TimeoutDuration returns Timeout as a time.Duration. Zero means no client timeout.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
// The token is not validated here; callers decide whether a missing token is fatal.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.Token != "" {
		c.Token = overlay.Token
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *Config) loadDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://router.huggingface.co/v1"
	}
	if c.Model == "" {
		c.Model = "meta-llama/Meta-Llama-3.1-8B-Instruct"
	}
	if c.Timeout == "" {
		c.Timeout = "0s"
	}
}

func (c *Config) loadEnv(env *Env) {
	lookup := func(key string, dst *string) {
		if key == "" {
			return
		}
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}

	lookup(env.BaseURL, &c.BaseURL)
	lookup(env.Model, &c.Model)
	lookup(env.Token, &c.Token)
	lookup(env.Timeout, &c.Timeout)
}

func (c *Config) validate() error {
	if c.Model == "" {
		return fmt.Errorf("model required")
	}
	if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid base_url: %q", c.BaseURL)
	}
	if d, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	} else if d < 0 {
		return fmt.Errorf("invalid timeout: %s is negative", c.Timeout)
	}
	return nil
}
