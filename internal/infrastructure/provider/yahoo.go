package provider

import (
	"context"
	"fmt"

	"github.com/guregu/null/v5"
	"github.com/piquette/finance-go/quote"

	"quotelog/internal/application"
	"quotelog/internal/domain"
)

// Ensure Yahoo implements application.QuoteSource.
var _ application.QuoteSource = (*Yahoo)(nil)

// Yahoo pulls quotes through the finance-go client. The underlying client
// has no context hook, so an in-flight call runs to completion even after
// ctx is canceled.
type Yahoo struct{}

func NewYahoo() *Yahoo { return &Yahoo{} }

func (y *Yahoo) Fetch(_ context.Context, symbol domain.Symbol) (domain.Quote, error) {
	q, err := quote.Get(string(symbol))
	if err != nil {
		return domain.Quote{}, fmt.Errorf("yahoo: get quote: %w", err)
	}
	if q == nil {
		// finance-go yields neither quote nor error for unknown symbols
		return domain.Quote{}, fmt.Errorf("yahoo: %s: %w", symbol, domain.ErrQuoteUnavailable)
	}
	return domain.Quote{
		Symbol:        symbol,
		CurrentPrice:  floatOrNull(q.RegularMarketPrice),
		PreviousClose: floatOrNull(q.RegularMarketPreviousClose),
		DayHigh:       floatOrNull(q.RegularMarketDayHigh),
		DayLow:        floatOrNull(q.RegularMarketDayLow),
		Volume:        intOrNull(int64(q.RegularMarketVolume)),
	}, nil
}

// Zero values from the feed mean "not reported", not a zero price.
func floatOrNull(v float64) null.Float { return null.NewFloat(v, v != 0) }

func intOrNull(v int64) null.Int { return null.NewInt(v, v != 0) }
