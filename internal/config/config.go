package config

import (
	"os"
	"strconv"
	"time"
)

const (
	DefaultSymbol          = "NVDA"
	DefaultCSVPath         = "nvda_prices.csv"
	DefaultIntervalMin     = 5
	DefaultProvider        = "yahoo"
	DefaultChartBaseURL    = "https://query1.finance.yahoo.com"
	DefaultShutdownTimeout = 5 * time.Second
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// Capture
	Symbol      string
	IntervalMin int
	CSVPath     string
	// Provider
	Provider       string
	ChartBaseURL   string
	RequestTimeout time.Duration
	// Status server
	ListenAddr string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

// Load reads environment variables and applies defaults. Flags layer on top
// of the result in main.
func Load() Config {
	return Config{
		Env:            getEnv("ENV", "local"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Symbol:         getEnv("SYMBOL", DefaultSymbol),
		IntervalMin:    atoiDef(getEnv("INTERVAL_MINUTES", strconv.Itoa(DefaultIntervalMin)), DefaultIntervalMin),
		CSVPath:        getEnv("CSV_PATH", DefaultCSVPath),
		Provider:       getEnv("PROVIDER", DefaultProvider),
		ChartBaseURL:   getEnv("CHART_BASE_URL", DefaultChartBaseURL),
		RequestTimeout: time.Duration(atoiDef(getEnv("REQUEST_TIMEOUT_MS", "10000"), 10000)) * time.Millisecond,
		ListenAddr:     getEnv("LISTEN_ADDR", ""),
	}
}
