package domain

import (
	"time"

	"github.com/guregu/null/v5"
)

// Timestamp renders as a single RFC3339 cell in CSV output. The wrapper is
// needed so the csv encoder treats the value as one column.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) MarshalCSV() (string, error) {
	return t.UTC().Format(time.RFC3339), nil
}

func (t *Timestamp) UnmarshalCSV(s string) error {
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// Record is one captured quote bound to its capture time, the unit the CSV
// log persists. Records are immutable once constructed and rows are only
// ever appended, never rewritten.
type Record struct {
	Timestamp     Timestamp  `csv:"timestamp" json:"timestamp"`
	Symbol        Symbol     `csv:"symbol" json:"symbol"`
	CurrentPrice  null.Float `csv:"current_price" json:"current_price"`
	PreviousClose null.Float `csv:"previous_close" json:"previous_close"`
	DayHigh       null.Float `csv:"day_high" json:"day_high"`
	DayLow        null.Float `csv:"day_low" json:"day_low"`
	Volume        null.Int   `csv:"volume" json:"volume"`
}

// NewRecord binds a quote to its capture time, in UTC.
func NewRecord(at time.Time, q Quote) Record {
	return Record{
		Timestamp:     Timestamp{at.UTC()},
		Symbol:        q.Symbol,
		CurrentPrice:  q.CurrentPrice,
		PreviousClose: q.PreviousClose,
		DayHigh:       q.DayHigh,
		DayLow:        q.DayLow,
		Volume:        q.Volume,
	}
}

// Validate enforces the persistence invariant: every row carries a capture
// time and a symbol. Market fields may be null.
func (r Record) Validate() error {
	if r.Timestamp.IsZero() || r.Symbol == "" {
		return ErrIncompleteRecord
	}
	return nil
}
