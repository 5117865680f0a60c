package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"quotelog/internal/domain"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/require"
)

var captureTime = time.Date(2025, 3, 7, 14, 30, 0, 0, time.UTC)

func fullQuote() domain.Quote {
	return domain.Quote{
		CurrentPrice:  null.FloatFrom(117.3),
		PreviousClose: null.FloatFrom(115.9),
		DayHigh:       null.FloatFrom(118.2),
		DayLow:        null.FloatFrom(114.5),
		Volume:        null.IntFrom(52_000_000),
	}
}

func Test_CaptureOnce(t *testing.T) {
	t.Parallel()
	sink := &fakeSink{}
	obs := &fakeObserver{}
	svc := NewQuoteLogService(
		&fakeSource{out: fullQuote()},
		sink,
		WithClock(fakeClock{t: captureTime}),
		WithObservers(obs),
	)

	rec, err := svc.CaptureOnce(context.Background(), "NVDA")
	require.NoError(t, err)
	require.Equal(t, domain.Symbol("NVDA"), rec.Symbol)
	require.True(t, rec.Timestamp.Equal(captureTime))
	require.InDelta(t, 117.3, rec.CurrentPrice.Float64, 1e-9)
	require.Len(t, sink.rows, 1)
	require.Len(t, obs.seen, 1)
	require.Equal(t, rec, sink.rows[0])
}

func Test_CaptureOnce_UsesRequestedSymbol(t *testing.T) {
	t.Parallel()
	source := &fakeSource{out: fullQuote()}
	sink := &fakeSink{}
	svc := NewQuoteLogService(source, sink, WithClock(fakeClock{t: captureTime}))

	rec, err := svc.CaptureOnce(context.Background(), "AAPL")
	require.NoError(t, err)
	require.Equal(t, []domain.Symbol{"AAPL"}, source.calls)
	require.Equal(t, domain.Symbol("AAPL"), rec.Symbol)
}

func Test_CaptureOnce_PartialQuoteIsPersisted(t *testing.T) {
	t.Parallel()
	sink := &fakeSink{}
	svc := NewQuoteLogService(
		&fakeSource{out: domain.Quote{CurrentPrice: null.FloatFrom(117.3)}},
		sink,
		WithClock(fakeClock{t: captureTime}),
	)

	rec, err := svc.CaptureOnce(context.Background(), "NVDA")
	require.NoError(t, err)
	require.Len(t, sink.rows, 1)
	require.True(t, rec.CurrentPrice.Valid)
	require.False(t, rec.Volume.Valid)
	require.False(t, rec.DayHigh.Valid)
}

func Test_CaptureOnce_FetchFailure(t *testing.T) {
	t.Parallel()
	sink := &fakeSink{}
	svc := NewQuoteLogService(&fakeSource{err: ErrUpstream}, sink)

	_, err := svc.CaptureOnce(context.Background(), "NVDA")
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, domain.Symbol("NVDA"), fe.Symbol)
	require.ErrorIs(t, err, ErrUpstream)
	require.Empty(t, sink.rows)
}

func Test_CaptureOnce_EmptyQuote(t *testing.T) {
	t.Parallel()
	sink := &fakeSink{}
	svc := NewQuoteLogService(&fakeSource{}, sink)

	_, err := svc.CaptureOnce(context.Background(), "NVDA")
	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	require.ErrorIs(t, err, domain.ErrQuoteUnavailable)
	require.Empty(t, sink.rows)
}

func Test_CaptureOnce_SinkFailure(t *testing.T) {
	t.Parallel()
	sinkErr := errors.New("disk full")
	obs := &fakeObserver{}
	svc := NewQuoteLogService(
		&fakeSource{out: fullQuote()},
		&fakeSink{err: sinkErr},
		WithObservers(obs),
	)

	_, err := svc.CaptureOnce(context.Background(), "NVDA")
	require.ErrorIs(t, err, sinkErr)
	var fe *FetchError
	require.False(t, errors.As(err, &fe), "sink failures must not be skippable")
	require.Empty(t, obs.seen)
}
