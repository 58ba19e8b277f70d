// Package lifecycle coordinates subsystem startup and graceful shutdown.
package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// ReadinessChecker reports whether startup has completed.
type ReadinessChecker interface {
	Ready() bool
}

// Coordinator tracks startup tasks and shutdown hooks across subsystems.
// Shutdown hooks block on Context().Done() and run their cleanup once the
// coordinator cancels it.
type Coordinator struct {
	ctx      context.Context
	cancel   context.CancelFunc
	startup  sync.WaitGroup
	shutdown sync.WaitGroup
	ready    atomic.Bool
}

// New creates a coordinator with an open lifecycle context.
func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Context returns the lifecycle context, cancelled when Shutdown begins.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// Ready reports whether all startup tasks have completed.
func (c *Coordinator) Ready() bool {
	return c.ready.Load()
}

// OnStartup runs fn concurrently as a tracked startup task.
func (c *Coordinator) OnStartup(fn func()) {
	c.startup.Add(1)
	go func() {
		defer c.startup.Done()
		fn()
	}()
}

// WaitForStartup blocks until all startup tasks complete, then marks the
// coordinator ready.
func (c *Coordinator) WaitForStartup() {
	c.startup.Wait()
	c.ready.Store(true)
}

// OnShutdown runs fn concurrently as a tracked shutdown hook. The hook
// should block on Context().Done() before cleaning up.
func (c *Coordinator) OnShutdown(fn func()) {
	c.shutdown.Add(1)
	go func() {
		defer c.shutdown.Done()
		fn()
	}()
}

// Shutdown cancels the lifecycle context and waits for all shutdown hooks
// to finish, returning an error if they exceed the timeout.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.cancel()

	done := make(chan struct{})
	go func() {
		c.shutdown.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timed out after %s", timeout)
	}
}
