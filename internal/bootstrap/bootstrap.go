package bootstrap

import (
	"fmt"
	"net/http"

	"quotelog/internal/application"
	"quotelog/internal/config"
	"quotelog/internal/infrastructure/csvlog"
	"quotelog/internal/infrastructure/httpx"
	"quotelog/internal/infrastructure/provider"
)

const staticPrice = 123.45

// BuildSource selects the quote source named by cfg.Provider.
func BuildSource(cfg config.Config) (application.QuoteSource, error) {
	switch cfg.Provider {
	case "yahoo":
		return provider.NewYahoo(), nil
	case "chart":
		return &provider.Chart{
			BaseURL: cfg.ChartBaseURL,
			HTTP: &httpx.Client{
				HTTP:      &http.Client{Timeout: cfg.RequestTimeout},
				UserAgent: provider.UserAgent,
			},
		}, nil
	case "static":
		return provider.NewStatic(staticPrice), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", cfg.Provider)
	}
}

// BuildService wires the selected source and the CSV sink into the capture
// service.
func BuildService(cfg config.Config, obs ...application.Observer) (*application.QuoteLogService, error) {
	source, err := BuildSource(cfg)
	if err != nil {
		return nil, err
	}
	sink := csvlog.New(cfg.CSVPath)
	return application.NewQuoteLogService(source, sink, application.WithObservers(obs...)), nil
}
