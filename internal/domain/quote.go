package domain

import "github.com/guregu/null/v5"

// Quote is a point-in-time snapshot of a symbol's market fields as supplied
// by a data source. A field is null when the source did not report it.
type Quote struct {
	Symbol        Symbol
	CurrentPrice  null.Float
	PreviousClose null.Float
	DayHigh       null.Float
	DayLow        null.Float
	Volume        null.Int
}

// Empty reports whether the quote carries no market data at all.
func (q Quote) Empty() bool {
	return !q.CurrentPrice.Valid &&
		!q.PreviousClose.Valid &&
		!q.DayHigh.Valid &&
		!q.DayLow.Valid &&
		!q.Volume.Valid
}
