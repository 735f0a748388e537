package config

import (
	"cmp"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

// ServerConfig holds listener settings for the HTTP server. Draining on
// shutdown is governed by the root shutdown_timeout.
type ServerConfig struct {
	Host         string `toml:"host"`
	Port         int    `toml:"port"`
	ReadTimeout  string `toml:"read_timeout"`
	WriteTimeout string `toml:"write_timeout"`

	envErr error
}

// Addr joins Host and Port into a listen address.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ReadTimeoutDuration returns ReadTimeout as a time.Duration.
func (c *ServerConfig) ReadTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ReadTimeout)
	return d
}

// WriteTimeoutDuration returns WriteTimeout as a time.Duration.
func (c *ServerConfig) WriteTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.WriteTimeout)
	return d
}

// Finalize applies defaults, TASNIF_SERVER_* overrides, and validation.
// A malformed TASNIF_SERVER_PORT is reported rather than ignored.
func (c *ServerConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *ServerConfig) Merge(overlay *ServerConfig) {
	mergeString(&c.Host, overlay.Host)
	mergeString(&c.ReadTimeout, overlay.ReadTimeout)
	mergeString(&c.WriteTimeout, overlay.WriteTimeout)
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
}

func (c *ServerConfig) loadDefaults() {
	c.Host = cmp.Or(c.Host, "0.0.0.0")
	c.Port = cmp.Or(c.Port, 8080)
	c.ReadTimeout = cmp.Or(c.ReadTimeout, "1m")
	c.WriteTimeout = cmp.Or(c.WriteTimeout, "15m")
}

func (c *ServerConfig) loadEnv() {
	mergeString(&c.Host, os.Getenv("TASNIF_SERVER_HOST"))
	mergeString(&c.ReadTimeout, os.Getenv("TASNIF_SERVER_READ_TIMEOUT"))
	mergeString(&c.WriteTimeout, os.Getenv("TASNIF_SERVER_WRITE_TIMEOUT"))

	if v := os.Getenv("TASNIF_SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			c.envErr = fmt.Errorf("invalid TASNIF_SERVER_PORT %q", v)
			return
		}
		c.Port = port
	}
}

func (c *ServerConfig) validate() error {
	if c.envErr != nil {
		return c.envErr
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	for key, v := range map[string]string{
		"read_timeout":  c.ReadTimeout,
		"write_timeout": c.WriteTimeout,
	} {
		if d, err := time.ParseDuration(v); err != nil || d < 0 {
			return fmt.Errorf("invalid %s: %q", key, v)
		}
	}
	return nil
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
