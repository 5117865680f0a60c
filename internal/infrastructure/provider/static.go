package provider

import (
	"context"

	"github.com/guregu/null/v5"

	"quotelog/internal/application"
	"quotelog/internal/domain"
)

// Ensure Static implements application.QuoteSource.
var _ application.QuoteSource = (*Static)(nil)

// Static returns a fixed quote for any symbol, for local runs and e2e tests
// that must not touch the real market API.
type Static struct {
	price float64
}

func NewStatic(price float64) *Static { return &Static{price: price} }

func (s *Static) Fetch(_ context.Context, symbol domain.Symbol) (domain.Quote, error) {
	return domain.Quote{
		Symbol:        symbol,
		CurrentPrice:  null.FloatFrom(s.price),
		PreviousClose: null.FloatFrom(s.price * 0.99),
		DayHigh:       null.FloatFrom(s.price * 1.01),
		DayLow:        null.FloatFrom(s.price * 0.98),
		Volume:        null.IntFrom(42_000_000),
	}, nil
}
