package domain

import "errors"

var (
	ErrInvalidSymbol    = errors.New("invalid symbol")
	ErrQuoteUnavailable = errors.New("quote unavailable")
	ErrIncompleteRecord = errors.New("incomplete record")
)
