package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/guregu/null/v5"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"quotelog/internal/application"
	"quotelog/internal/domain"
)

// Ensure Summary implements application.Observer.
var _ application.Observer = (*Summary)(nil)

// Summary prints the quick-check block for each captured record to Out.
// This is the stdout surface; operational logs go to stderr via zap.
type Summary struct {
	Out io.Writer
}

func New(out io.Writer) *Summary { return &Summary{Out: out} }

var (
	rule    = strings.Repeat("=", 50)
	grouped = message.NewPrinter(language.English)
)

func (s *Summary) Observe(rec domain.Record) {
	fmt.Fprintln(s.Out)
	fmt.Fprintln(s.Out, rule)
	fmt.Fprintf(s.Out, "%s Quick Check - %s\n", rec.Symbol, rec.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintln(s.Out, rule)
	fmt.Fprintf(s.Out, "Symbol         : %s\n", rec.Symbol)
	fmt.Fprintf(s.Out, "Current Price  : %s\n", money(rec.CurrentPrice))
	fmt.Fprintf(s.Out, "Previous Close : %s\n", money(rec.PreviousClose))
	fmt.Fprintf(s.Out, "Day High       : %s\n", money(rec.DayHigh))
	fmt.Fprintf(s.Out, "Day Low        : %s\n", money(rec.DayLow))
	fmt.Fprintf(s.Out, "Volume         : %s\n", volume(rec.Volume))
	fmt.Fprintln(s.Out, rule)
	fmt.Fprintln(s.Out)
}

func money(v null.Float) string {
	if !v.Valid {
		return "n/a"
	}
	return fmt.Sprintf("$%.2f", v.Float64)
}

func volume(v null.Int) string {
	if !v.Valid {
		return "n/a"
	}
	return grouped.Sprintf("%d", v.Int64)
}
