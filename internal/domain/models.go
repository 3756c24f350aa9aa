// Package domain provides core domain models and types shared across modules.
package domain

import "time"

// Horizon represents the intended holding period for a recommendation.
// The horizon changes how component scores are weighted when combined.
type Horizon string

const (
	HorizonShortTerm  Horizon = "short_term"
	HorizonMediumTerm Horizon = "medium_term"
	HorizonLongTerm   Horizon = "long_term"
)

// Valid reports whether h is one of the known horizons.
func (h Horizon) Valid() bool {
	switch h {
	case HorizonShortTerm, HorizonMediumTerm, HorizonLongTerm:
		return true
	}
	return false
}

// PriceBar represents a single daily OHLCV bar. Bars are immutable once ingested.
type PriceBar struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// PriceSeries is an ordered sequence of daily bars for one ticker,
// strictly ascending by date.
type PriceSeries []PriceBar

// Closes returns the closing prices of all bars, oldest first.
func (s PriceSeries) Closes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Close
	}
	return out
}

// Highs returns the high prices of all bars, oldest first.
func (s PriceSeries) Highs() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.High
	}
	return out
}

// Lows returns the low prices of all bars, oldest first.
func (s PriceSeries) Lows() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Low
	}
	return out
}

// Volumes returns the traded volumes of all bars, oldest first.
func (s PriceSeries) Volumes() []float64 {
	out := make([]float64, len(s))
	for i, b := range s {
		out[i] = b.Volume
	}
	return out
}

// FundamentalSnapshot holds the fundamental metrics of a security at a point
// in time. Every numeric metric is optional: a nil pointer means the data
// provider did not report the value, which is distinct from a reported zero.
// Scorers must skip absent metrics, never coerce them to zero.
type FundamentalSnapshot struct {
	Ticker         string   `json:"ticker"`
	Name           string   `json:"name"`
	Sector         string   `json:"sector"`
	Industry       string   `json:"industry"`
	MarketCap      *float64 `json:"market_cap,omitempty"`
	PERatio        *float64 `json:"pe_ratio,omitempty"`
	ForwardPE      *float64 `json:"forward_pe,omitempty"`
	PEGRatio       *float64 `json:"peg_ratio,omitempty"`
	PriceToBook    *float64 `json:"price_to_book,omitempty"`
	DividendYield  *float64 `json:"dividend_yield,omitempty"` // percent
	EPS            *float64 `json:"eps,omitempty"`
	Beta           *float64 `json:"beta,omitempty"`
	DebtToEquity   *float64 `json:"debt_to_equity,omitempty"`
	ReturnOnEquity *float64 `json:"return_on_equity,omitempty"`
	ProfitMargin   *float64 `json:"profit_margin,omitempty"`
	FreeCashFlow   *float64 `json:"free_cash_flow,omitempty"`
}

// Holding identifies one position in a portfolio for batch analysis.
type Holding struct {
	Ticker string `json:"ticker"`
	Name   string `json:"name,omitempty"`
}

// Float returns a pointer to v. Convenience for building snapshots.
func Float(v float64) *float64 {
	return &v
}
