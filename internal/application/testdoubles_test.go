package application

import (
	"context"
	"errors"
	"time"

	"quotelog/internal/domain"
)

var ErrUpstream = errors.New("upstream error")

type fakeSource struct {
	out   domain.Quote
	err   error
	calls []domain.Symbol
}

func (f *fakeSource) Fetch(_ context.Context, symbol domain.Symbol) (domain.Quote, error) {
	f.calls = append(f.calls, symbol)
	if f.err != nil {
		return domain.Quote{}, f.err
	}
	out := f.out
	out.Symbol = symbol
	return out, nil
}

type fakeSink struct {
	rows []domain.Record
	err  error
}

func (f *fakeSink) Append(_ context.Context, rec domain.Record) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, rec)
	return nil
}

type fakeObserver struct {
	seen []domain.Record
}

func (f *fakeObserver) Observe(rec domain.Record) { f.seen = append(f.seen, rec) }

type fakeClock struct{ t time.Time }

func (c fakeClock) Now() time.Time { return c.t }
