package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_Load_Defaults(t *testing.T) {
	for _, key := range []string{"SYMBOL", "INTERVAL_MINUTES", "CSV_PATH", "PROVIDER", "LISTEN_ADDR", "REQUEST_TIMEOUT_MS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.Equal(t, "NVDA", cfg.Symbol)
	require.Equal(t, 5, cfg.IntervalMin)
	require.Equal(t, "nvda_prices.csv", cfg.CSVPath)
	require.Equal(t, "yahoo", cfg.Provider)
	require.Equal(t, 10*time.Second, cfg.RequestTimeout)
	require.Empty(t, cfg.ListenAddr)
}

func Test_Load_EnvOverrides(t *testing.T) {
	t.Setenv("SYMBOL", "AAPL")
	t.Setenv("INTERVAL_MINUTES", "1")
	t.Setenv("CSV_PATH", "quotes.csv")
	t.Setenv("PROVIDER", "chart")
	t.Setenv("REQUEST_TIMEOUT_MS", "2500")

	cfg := Load()
	require.Equal(t, "AAPL", cfg.Symbol)
	require.Equal(t, 1, cfg.IntervalMin)
	require.Equal(t, "quotes.csv", cfg.CSVPath)
	require.Equal(t, "chart", cfg.Provider)
	require.Equal(t, 2500*time.Millisecond, cfg.RequestTimeout)
}

func Test_Load_BadIntervalFallsBack(t *testing.T) {
	t.Setenv("INTERVAL_MINUTES", "soon")
	require.Equal(t, 5, Load().IntervalMin)
}
