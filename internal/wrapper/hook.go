package wrapper

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"esgweb/internal/client"
	"esgweb/internal/schema"

	"github.com/rs/zerolog/log"
)

// hook runs backend calls with a timeout, tracks in-flight calls
// and turns failures into a single error toast
type hook struct {
	toaster  toaster
	timeout  time.Duration
	inFlight atomic.Int32
}

// Loading reports whether a call is in flight
func (h *hook) Loading() bool {
	return h.inFlight.Load() > 0
}

// InFlight number of calls currently running
func (h *hook) InFlight() int {
	return int(h.inFlight.Load())
}

func (h *hook) call(ctx context.Context, failure string, fn func(ctx context.Context) error) bool {
	h.inFlight.Add(1)
	defer h.inFlight.Add(-1)

	callCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if err := fn(callCtx); err != nil {
		log.Error().Err(err).Msg(failure)
		h.toaster.Push(ctx, schema.Toast{Level: schema.ToastError, Message: failureMessage(failure, err)})
		return false
	}
	return true
}

// load runs a side read for a page that already reports its own outcome,
// a failure is logged without a toast
func (h *hook) load(ctx context.Context, what string, fn func(ctx context.Context) error) bool {
	h.inFlight.Add(1)
	defer h.inFlight.Add(-1)

	callCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	if err := fn(callCtx); err != nil {
		log.Warn().Err(err).Msg("couldn't load " + what)
		return false
	}
	return true
}

func (h *hook) success(ctx context.Context, message string) {
	h.toaster.Push(ctx, schema.Toast{Level: schema.ToastSuccess, Message: message})
}

func failureMessage(failure string, err error) string {
	var statusErr *client.StatusError
	if errors.As(err, &statusErr) && statusErr.Message != "" {
		return failure + ": " + statusErr.Message
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return failure + ": the server did not answer in time"
	}
	return failure
}
