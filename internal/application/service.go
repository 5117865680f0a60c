package application

import (
	"context"
	"fmt"

	"quotelog/internal/domain"
)

type QuoteLogService struct {
	source    QuoteSource
	sink      RecordSink
	observers []Observer
	clock     Clock
}

type Option func(*QuoteLogService)

func WithClock(c Clock) Option { return func(s *QuoteLogService) { s.clock = c } }

func WithObservers(obs ...Observer) Option {
	return func(s *QuoteLogService) { s.observers = append(s.observers, obs...) }
}

func NewQuoteLogService(source QuoteSource, sink RecordSink, opts ...Option) *QuoteLogService {
	s := &QuoteLogService{
		source: source,
		sink:   sink,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = realClock{}
	}
	return s
}

// CaptureOnce runs one fetch-and-append cycle: pull a quote, stamp it with
// the capture time, persist it, then notify observers. A failed or empty
// fetch returns *FetchError and writes nothing. A sink failure is returned
// as-is; the persisted log is the whole point, so callers must not continue
// past it.
func (s *QuoteLogService) CaptureOnce(ctx context.Context, symbol domain.Symbol) (domain.Record, error) {
	q, err := s.source.Fetch(ctx, symbol)
	if err != nil {
		return domain.Record{}, &FetchError{Symbol: symbol, Err: err}
	}
	if q.Empty() {
		return domain.Record{}, &FetchError{Symbol: symbol, Err: domain.ErrQuoteUnavailable}
	}

	rec := domain.NewRecord(s.clock.Now(), q)
	if err := rec.Validate(); err != nil {
		return domain.Record{}, &FetchError{Symbol: symbol, Err: err}
	}

	if err := s.sink.Append(ctx, rec); err != nil {
		return domain.Record{}, fmt.Errorf("append record: %w", err)
	}
	for _, o := range s.observers {
		o.Observe(rec)
	}
	return rec, nil
}
