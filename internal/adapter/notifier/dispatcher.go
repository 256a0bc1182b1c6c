// Package notifier delivers workflow notifications on a best-effort basis.
// The Dispatcher fans a notification out to every configured sender in a
// background goroutine: a send failure is logged and never reaches the
// workflow operation that triggered it.
package notifier

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/internhub/intake-backend/internal/domain"
)

// Sender delivers a notification over one channel (log, in-app, email, ...).
type Sender interface {
	Send(ctx context.Context, n domain.Notification) error
}

// Dispatcher implements the services' notifier interface.
type Dispatcher struct {
	senders []Sender
	log     *slog.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher. timeout bounds each background dispatch.
func NewDispatcher(log *slog.Logger, timeout time.Duration, senders ...Sender) *Dispatcher {
	return &Dispatcher{
		senders: senders,
		log:     log,
		timeout: timeout,
	}
}

// Notify dispatches the notification asynchronously and returns immediately.
// The background context is detached from the caller's so an already-finished
// request cannot cancel an in-flight delivery.
func (d *Dispatcher) Notify(_ context.Context, n domain.Notification) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		for _, s := range d.senders {
			if err := s.Send(ctx, n); err != nil {
				d.log.Warn("notification delivery failed",
					slog.String("recipient_id", n.RecipientID.String()),
					slog.String("title", n.Title),
					slog.String("error", err.Error()),
				)
			}
		}
	}()
}

// Close waits for in-flight dispatches to finish. Called on shutdown.
func (d *Dispatcher) Close() {
	d.wg.Wait()
}
