package domain

import (
	"regexp"
	"strings"
)

// Symbol is an equity ticker, e.g. NVDA or BRK.B.
type Symbol string

var symbolRe = regexp.MustCompile(`^[A-Z][A-Z0-9.\-]{0,9}$`)

// NormalizeSymbol trims and uppercases a raw ticker string and validates its
// shape. Whether the symbol exists upstream is only known at fetch time.
func NormalizeSymbol(raw string) (Symbol, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if !symbolRe.MatchString(s) {
		return "", ErrInvalidSymbol
	}
	return Symbol(s), nil
}

func (s Symbol) String() string { return string(s) }
