// Package indicators computes derived technical indicator series from raw
// daily price bars. The output frame keeps the input length bar-for-bar;
// entries inside an indicator's warm-up window are NaN.
package indicators

import (
	"fmt"
	"math"

	"github.com/aristath/advisor/internal/domain"
	"github.com/aristath/advisor/pkg/formulas"
)

// Indicator windows. Kept as named constants so they are independently
// testable and tunable.
const (
	SMAShortWindow  = 20
	SMAMediumWindow = 50
	SMALongWindow   = 200

	EMAFastWindow   = 12
	EMASlowWindow   = 26
	MACDSignalSpan  = 9
	RSIWindow       = 14
	StochWindow     = 14
	StochSmooth     = 3
	ADXWindow       = 14
	BollingerWindow = 20
	BollingerWidth  = 2.0
	MFIWindow       = 14
	VolatilityDays  = 30
)

// Frame is a price series augmented, bar-for-bar, with derived indicator
// values. A NaN entry means the value is undefined at that bar (warm-up, or
// an indicator that could not be computed).
type Frame struct {
	Bars domain.PriceSeries

	SMA20  []float64
	SMA50  []float64
	SMA200 []float64
	EMA12  []float64
	EMA26  []float64

	MACD       []float64
	MACDSignal []float64
	MACDHist   []float64

	RSI    []float64
	StochK []float64
	StochD []float64

	ADX     []float64
	PlusDI  []float64
	MinusDI []float64

	BollingerHigh []float64
	BollingerMid  []float64
	BollingerLow  []float64

	OBV []float64
	MFI []float64

	DailyReturn  []float64
	Volatility30 []float64
}

// Len returns the number of bars in the frame.
func (f *Frame) Len() int {
	return len(f.Bars)
}

// Calculate derives the full indicator frame from a price series.
// If any bar carries invalid raw fields the frame is aborted with a
// data-quality error; indicator values are never fabricated.
func Calculate(series domain.PriceSeries) (*Frame, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("empty price series: %w", domain.ErrInsufficientData)
	}
	if err := validate(series); err != nil {
		return nil, err
	}

	closes := series.Closes()
	highs := series.Highs()
	lows := series.Lows()
	volumes := series.Volumes()

	f := &Frame{
		Bars:   series,
		SMA20:  formulas.SMA(closes, SMAShortWindow),
		SMA50:  formulas.SMA(closes, SMAMediumWindow),
		SMA200: formulas.SMA(closes, SMALongWindow),
		EMA12:  formulas.EMA(closes, EMAFastWindow),
		EMA26:  formulas.EMA(closes, EMASlowWindow),
		OBV:    formulas.OBV(closes, volumes),
		RSI:    formulas.RSI(closes, RSIWindow),
		MFI:    formulas.MFI(highs, lows, closes, volumes, MFIWindow),
	}

	f.MACD, f.MACDSignal, f.MACDHist = formulas.MACD(closes, EMAFastWindow, EMASlowWindow, MACDSignalSpan)
	f.StochK, f.StochD = formulas.Stochastic(highs, lows, closes, StochWindow, StochSmooth, StochSmooth)
	f.ADX, f.PlusDI, f.MinusDI = formulas.DirectionalMovement(highs, lows, closes, ADXWindow)
	f.BollingerHigh, f.BollingerMid, f.BollingerLow = formulas.BollingerBands(closes, BollingerWindow, BollingerWidth)

	f.DailyReturn = formulas.PercentChanges(closes)
	f.Volatility30 = formulas.RollingStdDev(f.DailyReturn, VolatilityDays)

	return f, nil
}

// validate checks that every bar carries usable OHLCV values.
func validate(series domain.PriceSeries) error {
	for i, bar := range series {
		switch {
		case !formulas.Finite(bar.Close) || bar.Close <= 0:
			return fmt.Errorf("bar %d has invalid close %v: %w", i, bar.Close, domain.ErrMissingField)
		case !formulas.Finite(bar.High) || bar.High <= 0:
			return fmt.Errorf("bar %d has invalid high %v: %w", i, bar.High, domain.ErrMissingField)
		case !formulas.Finite(bar.Low) || bar.Low <= 0:
			return fmt.Errorf("bar %d has invalid low %v: %w", i, bar.Low, domain.ErrMissingField)
		case math.IsNaN(bar.Volume) || bar.Volume < 0:
			return fmt.Errorf("bar %d has invalid volume %v: %w", i, bar.Volume, domain.ErrMissingField)
		}
	}
	return nil
}
