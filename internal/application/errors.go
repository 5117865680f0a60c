package application

import (
	"fmt"

	"quotelog/internal/domain"
)

// FetchError marks a capture that failed before anything was written: the
// source was unreachable, answered with garbage, or had no data for the
// symbol. The scheduled loop treats it as skippable; single-shot mode and
// every other error kind are fatal.
type FetchError struct {
	Symbol domain.Symbol
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.Symbol, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }
