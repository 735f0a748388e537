// Package module mounts self-contained HTTP handlers under single-segment
// path prefixes such as /api and /app.
package module

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/JaimeStill/tasnif/pkg/middleware"
)

// Module serves one path prefix. Requests reach the inner router with the
// prefix and any trailing slash removed, so "/app/" arrives as "/".
type Module struct {
	prefix  string
	router  http.Handler
	stack   middleware.Stack
	handler http.Handler
}

// New creates a Module for prefix, which must be a single segment like "/api".
// It panics on an invalid prefix since modules are wired at startup.
func New(prefix string, router http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:  prefix,
		router:  router,
		handler: router,
	}
}

// Prefix returns the module's path prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware that wraps every request the module serves.
func (m *Module) Use(mw ...middleware.Middleware) {
	m.stack.Use(mw...)
	m.handler = m.stack.Apply(m.router)
}

// Serve dispatches req to the inner router with the prefix stripped.
func (m *Module) Serve(w http.ResponseWriter, req *http.Request) {
	inner := req.Clone(req.Context())
	inner.URL.Path = m.innerPath(req.URL.Path)
	inner.URL.RawPath = ""
	m.handler.ServeHTTP(w, inner)
}

func (m *Module) innerPath(path string) string {
	rest := strings.TrimSuffix(strings.TrimPrefix(path, m.prefix), "/")
	if rest == "" {
		return "/"
	}
	return rest
}

func validatePrefix(prefix string) error {
	segment, ok := strings.CutPrefix(prefix, "/")
	switch {
	case !ok:
		return fmt.Errorf("module prefix must start with /: %q", prefix)
	case segment == "":
		return fmt.Errorf("module prefix cannot be empty or /")
	case strings.Contains(segment, "/"):
		return fmt.Errorf("module prefix must be a single segment: %q", prefix)
	}
	return nil
}
