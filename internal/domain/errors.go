package domain

import (
	"errors"
	"fmt"
)

// ErrInsufficientData is returned when a price series is shorter than the
// warm-up requirement of the indicators that the technical scorer reads.
// Scoring never degrades to a partial score.
var ErrInsufficientData = errors.New("insufficient price history for analysis")

// ErrMissingField is returned when required raw OHLCV data is absent or
// invalid. Indicator calculation aborts the frame instead of fabricating
// values.
var ErrMissingField = errors.New("price series is missing required fields")

// FetchError wraps a failure of the external market-data provider. It surfaces
// as a per-ticker error result and never crashes batch processing.
type FetchError struct {
	Ticker string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetching data for %s: %v", e.Ticker, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
