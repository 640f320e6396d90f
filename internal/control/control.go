// Package control owns the run's start gate and stop signal. The stop is
// an explicit context cancellation handed to the runner and pipeline, so
// the engine stays embeddable and testable without simulating keyboard
// input. Stopping is a one-way transition; there is no resume.
package control

import (
	"context"
	"sync"
)

type Controller struct {
	ctx    context.Context
	cancel context.CancelFunc

	start     chan struct{}
	startOnce sync.Once
}

// New derives the run context from parent. Cancelling the parent also
// stops the run.
func New(parent context.Context) *Controller {
	ctx, cancel := context.WithCancel(parent)
	return &Controller{
		ctx:    ctx,
		cancel: cancel,
		start:  make(chan struct{}),
	}
}

// Context is the run context; polled by the runner before each target and
// by the pipeline before each item.
func (c *Controller) Context() context.Context {
	return c.ctx
}

// Start opens the start gate. Safe to call more than once.
func (c *Controller) Start() {
	c.startOnce.Do(func() { close(c.start) })
}

// Stop cancels the run. Work already produced is drained by the caller,
// never discarded.
func (c *Controller) Stop() {
	c.cancel()
}

// Stopped reports whether the stop signal has been set.
func (c *Controller) Stopped() bool {
	return c.ctx.Err() != nil
}

// WaitStart blocks until the start gate opens or the run is stopped.
func (c *Controller) WaitStart() error {
	select {
	case <-c.start:
		return nil
	case <-c.ctx.Done():
		return c.ctx.Err()
	}
}
