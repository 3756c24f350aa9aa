// Package technical scores a security from its indicator frame. The scorer
// reads the latest bar plus a short trailing window for crossover and
// divergence detection, and composes the per-signal contributions into a
// single bounded score.
package technical

import (
	"fmt"
	"math"

	"github.com/aristath/advisor/internal/domain"
	"github.com/aristath/advisor/internal/modules/indicators"
	"github.com/aristath/advisor/pkg/formulas"
)

// MinBars is the minimum series length for full technical scoring; anything
// shorter yields an insufficient-data error, never a partial score.
const MinBars = 200

// Signal weights. They sum to 1.0; ADX, OBV and volatility are label-only.
const (
	weightTrend     = 0.30
	weightMACD      = 0.20
	weightRSI       = 0.15
	weightBollinger = 0.10
	weightVolume    = 0.10
	weightMFI       = 0.15
)

// Trailing windows used for event detection on the latest bars.
const (
	crossoverLookback  = 20 // golden/death cross scan
	macdCrossLookback  = 5
	divergenceLookback = 20
	obvLookback        = 10
	volumeShortWindow  = 5
	volumeLongWindow   = 20
)

// RSI / MFI / Bollinger thresholds.
const (
	rsiOverbought     = 70.0
	rsiNearOverbought = 65.0
	rsiOversold       = 30.0
	rsiNearOversold   = 35.0
	mfiOverbought     = 80.0
	mfiOversold       = 20.0
	bollingerBuffer   = 0.02
	adxStrongTrend    = 25.0
	adxModerateTrend  = 20.0
)

// Scorer derives a technical score from an indicator frame.
type Scorer struct{}

// NewScorer creates a technical scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score evaluates the latest bar of the frame. It requires at least MinBars
// bars of history so every long moving average is defined.
func (s *Scorer) Score(frame *indicators.Frame) (*Analysis, error) {
	n := frame.Len()
	if n < MinBars {
		return nil, fmt.Errorf("%d bars, need %d: %w", n, MinBars, domain.ErrInsufficientData)
	}

	last := n - 1
	price := frame.Bars[last].Close

	a := &Analysis{
		Price:  price,
		SMA20:  frame.SMA20[last],
		SMA50:  frame.SMA50[last],
		SMA200: frame.SMA200[last],
		MACD:   frame.MACD[last],
		MACDSignal: frame.MACDSignal[last],
		MACDHist:   frame.MACDHist[last],
		RSI:        frame.RSI[last],
		BollingerHigh: frame.BollingerHigh[last],
		BollingerMid:  frame.BollingerMid[last],
		BollingerLow:  frame.BollingerLow[last],
		ADX: frame.ADX[last],
	}

	a.Trend, a.TrendStrength = classifyTrend(price, a.SMA20, a.SMA50, a.SMA200)
	a.GoldenCross, a.DeathCross = detectMACrosses(frame)
	a.MACDStrength = macdStrength(a.MACD, a.MACDSignal)
	a.MACDCrossover = detectMACDCrossover(frame)
	a.RSISignal, a.RSIStrength = classifyRSI(a.RSI)
	a.RSIDivergence = detectRSIDivergence(frame)
	a.BollingerSignal, a.BollingerStrength = classifyBollinger(price, a.BollingerHigh, a.BollingerLow)
	a.ADXSignal = classifyADX(a.ADX, frame.PlusDI[last], frame.MinusDI[last])
	a.Volatility, a.VolatilitySignal = classifyVolatility(frame)
	a.VolumeSignal, a.VolumeStrength = classifyVolume(frame)
	a.OBVSignal = classifyOBV(frame)
	a.MFI, a.MFISignal, a.MFIStrength = classifyMFI(frame.MFI[last])

	raw := a.TrendStrength*weightTrend +
		a.MACDStrength*weightMACD +
		a.RSIStrength*weightRSI +
		a.BollingerStrength*weightBollinger +
		a.VolumeStrength*weightVolume +
		a.MFIStrength*weightMFI

	a.Score = clamp(round1(raw*10), -10, 10)
	a.Outlook = OutlookLabel(a.Score)

	return a, nil
}

// OutlookLabel maps a bounded score to its qualitative label. The thresholds
// are shared by the technical and fundamental scorers.
func OutlookLabel(score float64) string {
	switch {
	case score >= 7:
		return "Strong Buy"
	case score >= 3:
		return "Buy"
	case score >= -3:
		return "Neutral"
	case score >= -7:
		return "Sell"
	default:
		return "Strong Sell"
	}
}

// classifyTrend determines the trend from the ordering of price and the
// three simple moving averages.
func classifyTrend(price, sma20, sma50, sma200 float64) (string, float64) {
	switch {
	case price > sma20 && sma20 > sma50 && sma50 > sma200:
		return TrendStrongUptrend, 2
	case price > sma50 && sma50 > sma200:
		return TrendUptrend, 1
	case price < sma20 && sma20 < sma50 && sma50 < sma200:
		return TrendStrongDowntrend, -2
	case price < sma50 && sma50 < sma200:
		return TrendDowntrend, -1
	default:
		return TrendConsolidating, 0
	}
}

// detectMACrosses scans the trailing window for SMA50 crossing SMA200.
// Both flags are reported independently of the current trend.
func detectMACrosses(frame *indicators.Frame) (golden, death bool) {
	n := frame.Len()
	start := n - crossoverLookback
	if start < 0 {
		start = 0
	}
	for i := start; i < n-1; i++ {
		prev50, prev200 := frame.SMA50[i], frame.SMA200[i]
		next50, next200 := frame.SMA50[i+1], frame.SMA200[i+1]
		if math.IsNaN(prev50) || math.IsNaN(prev200) || math.IsNaN(next50) || math.IsNaN(next200) {
			continue
		}
		if prev50 < prev200 && next50 > next200 {
			golden = true
		}
		if prev50 > prev200 && next50 < next200 {
			death = true
		}
	}
	return golden, death
}

func macdStrength(macd, signal float64) float64 {
	switch {
	case macd > 0 && macd > signal:
		return 2
	case macd > 0:
		return 1
	case macd < 0 && macd < signal:
		return -2
	case macd < 0:
		return -1
	default:
		return 0
	}
}

// detectMACDCrossover looks for a MACD/signal crossover within the last few
// bars. Returns "Bullish", "Bearish" or empty. If both occur, the most
// recent one wins.
func detectMACDCrossover(frame *indicators.Frame) string {
	n := frame.Len()
	start := n - macdCrossLookback
	if start < 0 {
		start = 0
	}
	crossover := ""
	for i := start; i < n-1; i++ {
		prevM, prevS := frame.MACD[i], frame.MACDSignal[i]
		nextM, nextS := frame.MACD[i+1], frame.MACDSignal[i+1]
		if math.IsNaN(prevM) || math.IsNaN(prevS) || math.IsNaN(nextM) || math.IsNaN(nextS) {
			continue
		}
		if prevM < prevS && nextM > nextS {
			crossover = "Bullish"
		}
		if prevM > prevS && nextM < nextS {
			crossover = "Bearish"
		}
	}
	return crossover
}

func classifyRSI(rsi float64) (string, float64) {
	switch {
	case rsi > rsiOverbought:
		return "Overbought", -1
	case rsi > rsiNearOverbought:
		return "Approaching Overbought", -0.5
	case rsi < rsiOversold:
		return "Oversold", 1
	case rsi < rsiNearOversold:
		return "Approaching Oversold", 0.5
	default:
		return "Neutral", 0
	}
}

// detectRSIDivergence compares the last two local price extremes with the
// last two local RSI extremes over the trailing window. A bar is a local
// extreme when it exceeds both neighbours.
func detectRSIDivergence(frame *indicators.Frame) string {
	n := frame.Len()
	start := n - divergenceLookback
	if start < 1 {
		start = 1
	}

	var priceHighs, priceLows, rsiHighs, rsiLows []float64
	for i := start; i < n-1; i++ {
		c, prev, next := frame.Bars[i].Close, frame.Bars[i-1].Close, frame.Bars[i+1].Close
		if c > prev && c > next {
			priceHighs = append(priceHighs, c)
		}
		if c < prev && c < next {
			priceLows = append(priceLows, c)
		}
		r, rPrev, rNext := frame.RSI[i], frame.RSI[i-1], frame.RSI[i+1]
		if math.IsNaN(r) || math.IsNaN(rPrev) || math.IsNaN(rNext) {
			continue
		}
		if r > rPrev && r > rNext {
			rsiHighs = append(rsiHighs, r)
		}
		if r < rPrev && r < rNext {
			rsiLows = append(rsiLows, r)
		}
	}

	divergence := ""
	// Bullish: price making lower lows while RSI makes higher lows.
	if len(priceLows) >= 2 && len(rsiLows) >= 2 {
		if priceLows[len(priceLows)-1] < priceLows[len(priceLows)-2] &&
			rsiLows[len(rsiLows)-1] > rsiLows[len(rsiLows)-2] {
			divergence = "Bullish"
		}
	}
	// Bearish: price making higher highs while RSI makes lower highs.
	if len(priceHighs) >= 2 && len(rsiHighs) >= 2 {
		if priceHighs[len(priceHighs)-1] > priceHighs[len(priceHighs)-2] &&
			rsiHighs[len(rsiHighs)-1] < rsiHighs[len(rsiHighs)-2] {
			divergence = "Bearish"
		}
	}
	return divergence
}

// classifyBollinger places the price relative to the bands with a 2% buffer
// zone on each side. Band breaches are checked before buffer tests so the
// stronger signal wins.
func classifyBollinger(price, high, low float64) (string, float64) {
	if math.IsNaN(high) || math.IsNaN(low) {
		return "Neutral", 0
	}
	switch {
	case price > high:
		return "Overbought (BB)", -1
	case price > high*(1-bollingerBuffer):
		return "Upper Band Test", -0.5
	case price < low:
		return "Oversold (BB)", 1
	case price < low*(1+bollingerBuffer):
		return "Lower Band Test", 0.5
	default:
		return "Neutral", 0
	}
}

// classifyADX labels trend strength only; it carries no score weight.
func classifyADX(adx, pdi, ndi float64) string {
	switch {
	case adx > adxStrongTrend && pdi > ndi:
		return "Strong Uptrend"
	case adx > adxStrongTrend:
		return "Strong Downtrend"
	case adx > adxModerateTrend && pdi > ndi:
		return "Moderate Uptrend"
	case adx > adxModerateTrend:
		return "Moderate Downtrend"
	default:
		return "Weak Trend"
	}
}

// classifyVolatility compares the latest 30-day volatility against the
// standard deviation of daily returns over the whole series.
func classifyVolatility(frame *indicators.Frame) (float64, string) {
	baseline := formulas.StdDev(formulas.FiniteValues(frame.DailyReturn))

	vol := frame.Volatility30[frame.Len()-1]
	if math.IsNaN(vol) {
		vol = baseline
	}

	switch {
	case vol > baseline*1.5:
		return vol, "High"
	case vol < baseline*0.5:
		return vol, "Low"
	default:
		return vol, "Average"
	}
}

// classifyVolume compares recent average volume against the longer average.
func classifyVolume(frame *indicators.Frame) (string, float64) {
	n := frame.Len()
	volumes := frame.Bars.Volumes()
	recent := formulas.Mean(volumes[n-volumeShortWindow:])
	longer := formulas.Mean(volumes[n-volumeLongWindow:])

	ratio := 1.0
	if longer > 0 {
		ratio = recent / longer
	}

	switch {
	case ratio > 1.5:
		return "Increasing", 0.5
	case ratio < 0.7:
		return "Decreasing", -0.5
	default:
		return "Average", 0
	}
}

// classifyOBV labels the percent change of on-balance volume over the
// trailing window. Label only, no score weight.
func classifyOBV(frame *indicators.Frame) string {
	n := frame.Len()
	recent := frame.OBV[n-1]
	previous := frame.OBV[n-obvLookback]

	change := 0.0
	if previous != 0 {
		change = (recent - previous) / math.Abs(previous)
	}

	switch {
	case change > 0.05:
		return "Accumulation"
	case change < -0.05:
		return "Distribution"
	default:
		return "Neutral"
	}
}

// classifyMFI labels the money flow index. An undefined MFI (zero-volume
// windows) is treated as neutral at 50.
func classifyMFI(mfi float64) (float64, string, float64) {
	if math.IsNaN(mfi) {
		return 50, "Neutral", 0
	}
	switch {
	case mfi > mfiOverbought:
		return mfi, "Overbought (MFI)", -1
	case mfi < mfiOversold:
		return mfi, "Oversold (MFI)", 1
	default:
		return mfi, "Neutral", 0
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
