package formulas

import (
	"math"

	talib "github.com/markcheno/go-talib"
)

// The wrappers below delegate to go-talib but mark the warm-up region of each
// output as NaN instead of talib's zero padding, so a zero can never be
// mistaken for a real value. All outputs keep the input length.

// SMA computes the simple moving average of values over the given period.
func SMA(values []float64, period int) []float64 {
	if len(values) < period {
		return nanSlice(len(values))
	}
	return maskWarmup(talib.Sma(values, period), period-1)
}

// EMA computes the exponential moving average of values over the given period.
func EMA(values []float64, period int) []float64 {
	if len(values) < period {
		return nanSlice(len(values))
	}
	return maskWarmup(talib.Ema(values, period), period-1)
}

// RSI computes the Wilder-smoothed relative strength index.
func RSI(values []float64, period int) []float64 {
	if len(values) <= period {
		return nanSlice(len(values))
	}
	return maskWarmup(talib.Rsi(values, period), period)
}

// MACD computes the MACD line (EMA fast − EMA slow), its signal line
// (EMA of the MACD line) and the histogram (MACD − signal).
func MACD(values []float64, fast, slow, signal int) (macd, sig, hist []float64) {
	n := len(values)
	macd = nanSlice(n)
	sig = nanSlice(n)
	hist = nanSlice(n)
	if n < slow {
		return macd, sig, hist
	}

	emaFast := EMA(values, fast)
	emaSlow := EMA(values, slow)
	for i := slow - 1; i < n; i++ {
		macd[i] = emaFast[i] - emaSlow[i]
	}

	// Signal is an EMA over the valid MACD region only.
	valid := macd[slow-1:]
	if len(valid) >= signal {
		sigValid := maskWarmup(talib.Ema(valid, signal), signal-1)
		for i, v := range sigValid {
			sig[slow-1+i] = v
		}
	}
	for i := range hist {
		if !math.IsNaN(macd[i]) && !math.IsNaN(sig[i]) {
			hist[i] = macd[i] - sig[i]
		}
	}
	return macd, sig, hist
}

// Stochastic computes the slow stochastic oscillator (%K smoothed over
// smoothK periods, %D an SMA of %K over smoothD periods).
func Stochastic(highs, lows, closes []float64, fastK, smoothK, smoothD int) (k, d []float64) {
	lookback := (fastK - 1) + (smoothK - 1) + (smoothD - 1)
	if len(closes) <= lookback {
		return nanSlice(len(closes)), nanSlice(len(closes))
	}
	k, d = talib.Stoch(highs, lows, closes, fastK, smoothK, talib.SMA, smoothD, talib.SMA)
	return maskWarmup(k, lookback), maskWarmup(d, lookback)
}

// DirectionalMovement computes ADX, +DI and −DI over the given period.
func DirectionalMovement(highs, lows, closes []float64, period int) (adx, pdi, ndi []float64) {
	n := len(closes)
	if n < 2*period {
		return nanSlice(n), nanSlice(n), nanSlice(n)
	}
	adx = maskWarmup(talib.Adx(highs, lows, closes, period), 2*period-1)
	pdi = maskWarmup(talib.PlusDI(highs, lows, closes, period), period)
	ndi = maskWarmup(talib.MinusDI(highs, lows, closes, period), period)
	return adx, pdi, ndi
}

// BollingerBands computes the upper, middle and lower Bollinger Bands.
func BollingerBands(values []float64, period int, stdDevs float64) (upper, middle, lower []float64) {
	if len(values) < period {
		n := len(values)
		return nanSlice(n), nanSlice(n), nanSlice(n)
	}
	upper, middle, lower = talib.BBands(values, period, stdDevs, stdDevs, talib.SMA)
	return maskWarmup(upper, period-1), maskWarmup(middle, period-1), maskWarmup(lower, period-1)
}

// OBV computes on-balance volume, a cumulative signed-volume sum.
func OBV(closes, volumes []float64) []float64 {
	if len(closes) == 0 {
		return nil
	}
	return maskWarmup(talib.Obv(closes, volumes), 0)
}

// MFI computes the money flow index. Bars where the volume flow ratio is
// undefined (e.g. zero volume throughout the window) come back as NaN
// rather than failing.
func MFI(highs, lows, closes, volumes []float64, period int) []float64 {
	if len(closes) <= period {
		return nanSlice(len(closes))
	}
	return maskWarmup(talib.Mfi(highs, lows, closes, volumes, period), period)
}

// nanSlice returns a slice of n NaN values.
func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// maskWarmup replaces the first `lookback` entries and any non-finite entries
// with NaN, leaving real values untouched.
func maskWarmup(values []float64, lookback int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		if i < lookback || math.IsInf(v, 0) {
			out[i] = math.NaN()
		} else {
			out[i] = v
		}
	}
	return out
}
