package application

import (
	"context"
	"time"

	"quotelog/internal/domain"
)

// QuoteSource supplies a point-in-time quote for a symbol. Implementations
// make exactly one upstream attempt per call; retrying is the caller's
// decision.
type QuoteSource interface {
	Fetch(ctx context.Context, symbol domain.Symbol) (domain.Quote, error)
}

// RecordSink persists captured records append-only. The row is fully written
// and flushed when Append returns.
type RecordSink interface {
	Append(ctx context.Context, rec domain.Record) error
}

// Observer is notified after a record has been persisted.
type Observer interface {
	Observe(rec domain.Record)
}

type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }
