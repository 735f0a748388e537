// Package lifecycle tracks when the service becomes ready and drains it on shutdown.
package lifecycle

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// Coordinator runs named startup checks and shutdown hooks.
// It reports ready only after every startup check has succeeded, and stops
// reporting ready as soon as shutdown begins.
type Coordinator struct {
	ctx    context.Context
	cancel context.CancelFunc

	startup  errgroup.Group
	shutdown sync.WaitGroup
	ready    atomic.Bool

	mu      sync.Mutex
	pending map[string]int
}

// New creates a Coordinator whose context is cancelled by Shutdown.
func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		ctx:     ctx,
		cancel:  cancel,
		pending: make(map[string]int),
	}
}

// Context returns the coordinator's context, cancelled on shutdown.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// OnStartup runs fn in the background immediately. A non-nil error keeps
// the coordinator from becoming ready and is returned by WaitForStartup.
func (c *Coordinator) OnStartup(name string, fn func() error) {
	c.startup.Go(func() error {
		if err := fn(); err != nil {
			return fmt.Errorf("startup %s: %w", name, err)
		}
		return nil
	})
}

// OnShutdown registers fn to run once Shutdown cancels the context.
func (c *Coordinator) OnShutdown(name string, fn func()) {
	c.mu.Lock()
	c.pending[name]++
	c.mu.Unlock()

	c.shutdown.Go(func() {
		<-c.ctx.Done()
		fn()

		c.mu.Lock()
		if c.pending[name]--; c.pending[name] == 0 {
			delete(c.pending, name)
		}
		c.mu.Unlock()
	})
}

// Ready reports whether startup completed and shutdown has not begun.
func (c *Coordinator) Ready() bool {
	return c.ready.Load()
}

// WaitForStartup blocks until every startup check returns and marks the
// coordinator ready when none failed.
func (c *Coordinator) WaitForStartup() error {
	if err := c.startup.Wait(); err != nil {
		return err
	}
	if c.ctx.Err() == nil {
		c.ready.Store(true)
	}
	return nil
}

// Shutdown withdraws readiness, cancels the context, and waits up to timeout
// for shutdown hooks. On timeout the error names the hooks still running.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.ready.Store(false)
	c.cancel()

	done := make(chan struct{})
	go func() {
		c.shutdown.Wait()
		close(done)
	}()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-done:
		return nil
	case <-timer.C:
		return fmt.Errorf("shutdown timed out after %v waiting on %s", timeout, c.pendingNames())
	}
}

func (c *Coordinator) pendingNames() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return strings.Join(slices.Sorted(maps.Keys(c.pending)), ", ")
}
