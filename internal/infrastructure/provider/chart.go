package provider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/guregu/null/v5"

	"quotelog/internal/application"
	"quotelog/internal/domain"
	"quotelog/internal/infrastructure/httpx"
)

const (
	chartPath = "/v8/finance/chart/"

	// UserAgent is sent on chart requests; the endpoint throttles Go's
	// default agent string.
	UserAgent = "Mozilla/5.0 (compatible; quotelog/1.0)"
)

// Ensure Chart implements application.QuoteSource.
var _ application.QuoteSource = (*Chart)(nil)

// Chart fetches quotes from the Yahoo v8 chart endpoint directly. The meta
// block usually carries every field; whatever it omits is backfilled from
// the day's 1-minute series.
type Chart struct {
	BaseURL string
	HTTP    *httpx.Client
}

type chartResp struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *chartErr     `json:"error"`
	} `json:"chart"`
}

type chartErr struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type chartMeta struct {
	Symbol               string   `json:"symbol"`
	RegularMarketPrice   *float64 `json:"regularMarketPrice"`
	PreviousClose        *float64 `json:"previousClose"`
	ChartPreviousClose   *float64 `json:"chartPreviousClose"`
	RegularMarketDayHigh *float64 `json:"regularMarketDayHigh"`
	RegularMarketDayLow  *float64 `json:"regularMarketDayLow"`
	RegularMarketVolume  *int64   `json:"regularMarketVolume"`
}

type chartSeries struct {
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}

type chartResult struct {
	Meta       chartMeta `json:"meta"`
	Indicators struct {
		Quote []chartSeries `json:"quote"`
	} `json:"indicators"`
}

func (p *Chart) Fetch(ctx context.Context, symbol domain.Symbol) (domain.Quote, error) {
	if p.BaseURL == "" {
		return domain.Quote{}, errors.New("chart: missing base url")
	}

	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("chart: invalid base url: %w", err)
	}
	u.Path = chartPath + url.PathEscape(string(symbol))
	q := u.Query()
	q.Set("interval", "1m")
	q.Set("range", "1d")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("chart: create request: %w", err)
	}

	var body chartResp
	if err := p.client().DoJSON(req, &body); err != nil {
		return domain.Quote{}, fmt.Errorf("chart: do request: %w", err)
	}
	if e := body.Chart.Error; e != nil {
		return domain.Quote{}, fmt.Errorf("chart: %s: %s", e.Code, e.Description)
	}
	if len(body.Chart.Result) == 0 {
		return domain.Quote{}, fmt.Errorf("chart: %s: %w", symbol, domain.ErrQuoteUnavailable)
	}

	res := body.Chart.Result[0]
	out := domain.Quote{
		Symbol:        symbol,
		CurrentPrice:  null.FloatFromPtr(res.Meta.RegularMarketPrice),
		PreviousClose: null.FloatFromPtr(previousClose(res.Meta)),
		DayHigh:       null.FloatFromPtr(res.Meta.RegularMarketDayHigh),
		DayLow:        null.FloatFromPtr(res.Meta.RegularMarketDayLow),
		Volume:        null.IntFromPtr(res.Meta.RegularMarketVolume),
	}
	fillFromSeries(&out, res)
	return out, nil
}

func (p *Chart) client() *httpx.Client {
	if p.HTTP != nil {
		return p.HTTP
	}
	return &httpx.Client{UserAgent: UserAgent}
}

func previousClose(m chartMeta) *float64 {
	if m.PreviousClose != nil {
		return m.PreviousClose
	}
	return m.ChartPreviousClose
}

// fillFromSeries backfills fields the meta block left empty: the last traded
// close stands in for the current price, the series extremes for the day
// range, and the last non-null bar for volume.
func fillFromSeries(out *domain.Quote, res chartResult) {
	if len(res.Indicators.Quote) == 0 {
		return
	}
	series := res.Indicators.Quote[0]
	if !out.CurrentPrice.Valid {
		out.CurrentPrice = null.FloatFromPtr(lastFloat(series.Close))
	}
	if !out.DayHigh.Valid {
		out.DayHigh = null.FloatFromPtr(maxFloat(series.High))
	}
	if !out.DayLow.Valid {
		out.DayLow = null.FloatFromPtr(minFloat(series.Low))
	}
	if !out.Volume.Valid {
		out.Volume = null.IntFromPtr(lastInt(series.Volume))
	}
}

func lastFloat(vals []*float64) *float64 {
	for i := len(vals) - 1; i >= 0; i-- {
		if vals[i] != nil {
			return vals[i]
		}
	}
	return nil
}

func lastInt(vals []*int64) *int64 {
	for i := len(vals) - 1; i >= 0; i-- {
		if vals[i] != nil {
			return vals[i]
		}
	}
	return nil
}

func maxFloat(vals []*float64) *float64 {
	var out *float64
	for _, v := range vals {
		if v == nil {
			continue
		}
		if out == nil || *v > *out {
			out = v
		}
	}
	return out
}

func minFloat(vals []*float64) *float64 {
	var out *float64
	for _, v := range vals {
		if v == nil {
			continue
		}
		if out == nil || *v < *out {
			out = v
		}
	}
	return out
}
