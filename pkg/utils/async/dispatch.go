package async

import (
	"context"
	"runtime/debug"
	"sync"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Dispatcher runs follow-up work (report notifications) after the caller has
// returned. Pending work can be awaited before the process exits.
type Dispatcher struct {
	wg sync.WaitGroup
}

var defaultDispatcher Dispatcher

// Dispatch runs handler in the background on the default dispatcher
func Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	defaultDispatcher.Dispatch(ctx, handler)
}

// Wait blocks until the work dispatched on the default dispatcher has finished
func Wait(ctx context.Context) error {
	return defaultDispatcher.Wait(ctx)
}

// Dispatch runs handler in a goroutine. The handler gets a context detached from
// ctx cancellation that keeps its logger and request ID. Errors and panics are logged.
func (d *Dispatcher) Dispatch(ctx context.Context, handler func(ctx context.Context) error) {
	bgCtx := detach(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				ctxlog.From(bgCtx).Error("Panic in dispatched handler",
					"recover", r,
					"stack", string(debug.Stack()),
				)
			}
		}()

		if err := handler(bgCtx); err != nil {
			ctxlog.From(bgCtx).Error("Dispatched handler failed", "error", err)
		}
	}()
}

// Wait blocks until every dispatched handler has returned or ctx is done
func (d *Dispatcher) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "pending dispatched work")
	}
}

func detach(ctx context.Context) context.Context {
	bgCtx := ctxlog.With(context.Background(), ctxlog.From(ctx))
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		bgCtx = context.WithValue(bgCtx, middleware.RequestIDKey, reqID)
	}
	return bgCtx
}
