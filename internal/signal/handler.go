// Package signal turns SIGINT and SIGTERM into context cancellation so a
// running board shuts down through the same path as a normal quit.
//
// Import rules:
//   - CAN import: std lib only
//   - MUST NOT import: internal packages
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Handler cancels its context on the first shutdown signal.
type Handler struct {
	ctx      context.Context //nolint:containedctx // handler owns the context lifecycle
	cancel   context.CancelFunc
	sigChan  chan os.Signal
	done     chan struct{}
	stopOnce sync.Once

	mu       sync.Mutex
	received os.Signal
}

// NewHandler starts listening for SIGINT and SIGTERM. Call Stop when the
// command returns.
func NewHandler(parent context.Context) *Handler {
	ctx, cancel := context.WithCancel(parent)
	h := &Handler{
		ctx:     ctx,
		cancel:  cancel,
		sigChan: make(chan os.Signal, 1),
		done:    make(chan struct{}),
	}

	signal.Notify(h.sigChan, syscall.SIGINT, syscall.SIGTERM)
	go h.listen()

	return h
}

// Context is canceled when a signal arrives, when the parent is canceled,
// or when Stop is called.
func (h *Handler) Context() context.Context {
	return h.ctx
}

// Received returns the first signal seen, or nil.
func (h *Handler) Received() os.Signal {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.received
}

// Stop unregisters the handler and cancels its context. Safe to call more than once.
func (h *Handler) Stop() {
	h.stopOnce.Do(func() {
		signal.Stop(h.sigChan)
		close(h.done)
		h.cancel()
	})
}

// handle records sig if it is the first one and cancels the context.
func (h *Handler) handle(sig os.Signal) {
	h.mu.Lock()
	if h.received == nil {
		h.received = sig
	}
	h.mu.Unlock()
	h.cancel()
}

// listen forwards signals until the context ends or Stop is called.
func (h *Handler) listen() {
	for {
		select {
		case <-h.ctx.Done():
			return
		case <-h.done:
			return
		case sig := <-h.sigChan:
			h.handle(sig)
		}
	}
}
