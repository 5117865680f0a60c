package worker

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"quotelog/internal/application"
	"quotelog/internal/domain"
)

// Capturer runs one fetch-and-append cycle.
type Capturer interface {
	CaptureOnce(ctx context.Context, symbol domain.Symbol) (domain.Record, error)
}

// IntervalWorker drives the scheduled mode: an immediate first capture and
// then one more after every delay, until the context is canceled. The delay
// starts after a cycle finishes, so consecutive cycle starts are separated by
// at least Every plus the cycle's own duration.
type IntervalWorker struct {
	Service Capturer
	Symbol  domain.Symbol
	Every   time.Duration
	Log     *zap.Logger
}

// Run blocks until ctx is canceled (clean stop, returns nil) or a cycle
// fails with a non-recoverable error (returns it). A *application.FetchError
// only skips the cycle.
func (w *IntervalWorker) Run(ctx context.Context) error {
	log := w.Log
	if log == nil {
		log = zap.NewNop()
	}
	if w.Every <= 0 {
		w.Every = 5 * time.Minute
	}

	log.Info("worker_started",
		zap.String("symbol", string(w.Symbol)),
		zap.Duration("every", w.Every),
	)
	for {
		if err := w.cycle(ctx, log); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			log.Info("worker_stopped")
			return nil
		case <-time.After(w.Every):
		}
	}
}

func (w *IntervalWorker) cycle(ctx context.Context, log *zap.Logger) error {
	rec, err := w.Service.CaptureOnce(ctx, w.Symbol)
	if err == nil {
		log.Info("quote_logged",
			zap.String("symbol", string(rec.Symbol)),
			zap.Float64("price", rec.CurrentPrice.ValueOrZero()),
		)
		return nil
	}
	if ctx.Err() != nil {
		// interrupted mid-fetch; Run exits on the next select
		return nil
	}
	var fe *application.FetchError
	if errors.As(err, &fe) {
		log.Warn("cycle_skipped", zap.String("symbol", string(w.Symbol)), zap.Error(err))
		return nil
	}
	return err
}
