package console

import (
	"bytes"
	"testing"
	"time"

	"quotelog/internal/domain"

	"github.com/guregu/null/v5"
	"github.com/stretchr/testify/require"
)

func Test_Observe_FullQuote(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)
	at := time.Date(2025, 3, 7, 14, 30, 0, 0, time.UTC)
	s.Observe(domain.NewRecord(at, domain.Quote{
		Symbol:        "NVDA",
		CurrentPrice:  null.FloatFrom(117.3),
		PreviousClose: null.FloatFrom(115.9),
		DayHigh:       null.FloatFrom(118.2),
		DayLow:        null.FloatFrom(114.5),
		Volume:        null.IntFrom(52_000_000),
	}))

	out := buf.String()
	require.Contains(t, out, "NVDA Quick Check - 2025-03-07 14:30:00")
	require.Contains(t, out, "Current Price  : $117.30")
	require.Contains(t, out, "Previous Close : $115.90")
	require.Contains(t, out, "Day High       : $118.20")
	require.Contains(t, out, "Day Low        : $114.50")
	require.Contains(t, out, "Volume         : 52,000,000")
}

func Test_Observe_NullFields(t *testing.T) {
	var buf bytes.Buffer
	s := New(&buf)
	at := time.Date(2025, 3, 7, 14, 30, 0, 0, time.UTC)
	s.Observe(domain.NewRecord(at, domain.Quote{
		Symbol:       "NVDA",
		CurrentPrice: null.FloatFrom(117.3),
	}))

	out := buf.String()
	require.Contains(t, out, "Previous Close : n/a")
	require.Contains(t, out, "Volume         : n/a")
}
