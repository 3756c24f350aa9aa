package technical

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/advisor/internal/domain"
	"github.com/aristath/advisor/internal/modules/indicators"
)

// newTestFrame builds a fully populated frame of n bars with every signal in
// its neutral state. Tests mutate individual slices to provoke signals.
func newTestFrame(n int, price float64) *indicators.Frame {
	bars := make(domain.PriceSeries, n)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range bars {
		bars[i] = domain.PriceBar{
			Date:   start.AddDate(0, 0, i),
			Open:   price,
			High:   price * 1.01,
			Low:    price * 0.99,
			Close:  price,
			Volume: 1000,
		}
	}

	return &indicators.Frame{
		Bars:          bars,
		SMA20:         fill(n, price),
		SMA50:         fill(n, price),
		SMA200:        fill(n, price),
		EMA12:         fill(n, price),
		EMA26:         fill(n, price),
		MACD:          fill(n, 0),
		MACDSignal:    fill(n, 0),
		MACDHist:      fill(n, 0),
		RSI:           fill(n, 50),
		StochK:        fill(n, 50),
		StochD:        fill(n, 50),
		ADX:           fill(n, 10),
		PlusDI:        fill(n, 20),
		MinusDI:       fill(n, 20),
		BollingerHigh: fill(n, price*1.1),
		BollingerMid:  fill(n, price),
		BollingerLow:  fill(n, price*0.9),
		OBV:           fill(n, 1000),
		MFI:           fill(n, 50),
		DailyReturn:   fill(n, 0),
		Volatility30:  fill(n, 0),
	}
}

func fill(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestScore_InsufficientBars(t *testing.T) {
	frame := newTestFrame(MinBars-1, 100)

	_, err := NewScorer().Score(frame)
	assert.ErrorIs(t, err, domain.ErrInsufficientData)
}

func TestScore_NeutralFrame(t *testing.T) {
	frame := newTestFrame(250, 100)

	a, err := NewScorer().Score(frame)
	require.NoError(t, err)

	assert.Equal(t, TrendConsolidating, a.Trend)
	assert.Equal(t, "Neutral", a.RSISignal)
	assert.Equal(t, "Neutral", a.BollingerSignal)
	assert.Equal(t, "Average", a.VolumeSignal)
	assert.Equal(t, "Neutral", a.MFISignal)
	assert.Equal(t, 0.0, a.Score)
	assert.Equal(t, "Neutral", a.Outlook)
}

func TestScore_StrongBullishSetup(t *testing.T) {
	n := 250
	frame := newTestFrame(n, 110)
	frame.SMA20 = fill(n, 105)
	frame.SMA50 = fill(n, 100)
	frame.SMA200 = fill(n, 95)
	frame.MACD = fill(n, 1)
	frame.MACDSignal = fill(n, 0.5)
	frame.RSI = fill(n, 25)
	frame.BollingerLow = fill(n, 112)
	frame.BollingerHigh = fill(n, 125)
	frame.MFI = fill(n, 10)
	// Volume spike over the last five bars.
	for i := n - 5; i < n; i++ {
		frame.Bars[i].Volume = 2000
	}

	a, err := NewScorer().Score(frame)
	require.NoError(t, err)

	assert.Equal(t, TrendStrongUptrend, a.Trend)
	assert.Equal(t, 2.0, a.TrendStrength)
	assert.Equal(t, 2.0, a.MACDStrength)
	assert.Equal(t, "Oversold", a.RSISignal)
	assert.Equal(t, "Oversold (BB)", a.BollingerSignal)
	assert.Equal(t, "Increasing", a.VolumeSignal)
	assert.Equal(t, "Oversold (MFI)", a.MFISignal)

	// Raw contribution of 1.45 scales and clamps to the ceiling.
	assert.Equal(t, 10.0, a.Score)
	assert.Equal(t, "Strong Buy", a.Outlook)
}

func TestScore_StrongBearishSetup(t *testing.T) {
	n := 250
	frame := newTestFrame(n, 80)
	frame.SMA20 = fill(n, 85)
	frame.SMA50 = fill(n, 90)
	frame.SMA200 = fill(n, 95)
	frame.MACD = fill(n, -1)
	frame.MACDSignal = fill(n, -0.5)
	frame.RSI = fill(n, 75)
	frame.BollingerHigh = fill(n, 78)
	frame.BollingerLow = fill(n, 70)
	frame.MFI = fill(n, 85)

	a, err := NewScorer().Score(frame)
	require.NoError(t, err)

	assert.Equal(t, TrendStrongDowntrend, a.Trend)
	assert.Equal(t, -2.0, a.MACDStrength)
	assert.Equal(t, "Overbought", a.RSISignal)
	assert.Equal(t, "Overbought (BB)", a.BollingerSignal)
	assert.Equal(t, "Overbought (MFI)", a.MFISignal)
	assert.Equal(t, -10.0, a.Score)
	assert.Equal(t, "Strong Sell", a.Outlook)
}

func TestClassifyRSI_Boundaries(t *testing.T) {
	tests := []struct {
		name     string
		rsi      float64
		signal   string
		strength float64
	}{
		{"exactly at overbought threshold", 70.0, "Approaching Overbought", -0.5},
		{"just above overbought threshold", 70.01, "Overbought", -1},
		{"just below overbought threshold", 69.99, "Approaching Overbought", -0.5},
		{"exactly at oversold threshold", 30.0, "Approaching Oversold", 0.5},
		{"just below oversold threshold", 29.99, "Oversold", 1},
		{"neutral middle", 50.0, "Neutral", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signal, strength := classifyRSI(tt.rsi)
			assert.Equal(t, tt.signal, signal)
			assert.Equal(t, tt.strength, strength)
		})
	}
}

func TestClassifyBollinger_BreachBeatsBufferZone(t *testing.T) {
	// A price above the upper band is a breach even though it also sits
	// inside the 2% buffer zone.
	signal, strength := classifyBollinger(113, 112, 90)
	assert.Equal(t, "Overbought (BB)", signal)
	assert.Equal(t, -1.0, strength)

	// Inside the buffer but below the band is only a band test.
	signal, strength = classifyBollinger(110.5, 112, 90)
	assert.Equal(t, "Upper Band Test", signal)
	assert.Equal(t, -0.5, strength)

	// NaN bands are neutral.
	signal, strength = classifyBollinger(100, math.NaN(), math.NaN())
	assert.Equal(t, "Neutral", signal)
	assert.Equal(t, 0.0, strength)
}

func TestDetectMACrosses(t *testing.T) {
	n := 250
	frame := newTestFrame(n, 100)
	// SMA50 crosses above SMA200 five bars from the end.
	for i := 0; i < n; i++ {
		frame.SMA200[i] = 100
		if i < n-5 {
			frame.SMA50[i] = 99
		} else {
			frame.SMA50[i] = 101
		}
	}

	golden, death := detectMACrosses(frame)
	assert.True(t, golden)
	assert.False(t, death)

	// Flip the cross direction.
	for i := 0; i < n; i++ {
		if i < n-5 {
			frame.SMA50[i] = 101
		} else {
			frame.SMA50[i] = 99
		}
	}
	golden, death = detectMACrosses(frame)
	assert.False(t, golden)
	assert.True(t, death)
}

func TestDetectMACDCrossover_MostRecentWins(t *testing.T) {
	n := 250
	frame := newTestFrame(n, 100)
	frame.MACDSignal = fill(n, 0)
	// Bullish cross at n-4, bearish cross at n-2.
	frame.MACD[n-5] = -1
	frame.MACD[n-4] = 1
	frame.MACD[n-3] = 1
	frame.MACD[n-2] = -1
	frame.MACD[n-1] = -1

	assert.Equal(t, "Bearish", detectMACDCrossover(frame))
}

func TestDetectRSIDivergence_Bullish(t *testing.T) {
	n := 250
	frame := newTestFrame(n, 100)
	// Price carves two local lows, the second lower; RSI carves two local
	// lows, the second higher.
	setLow := func(i int, price, rsi float64) {
		frame.Bars[i].Close = price
		frame.RSI[i] = rsi
	}
	setLow(n-15, 90, 25)
	setLow(n-5, 85, 35)

	assert.Equal(t, "Bullish", detectRSIDivergence(frame))
}

func TestOutlookLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{10, "Strong Buy"},
		{7, "Strong Buy"},
		{6.9, "Buy"},
		{3, "Buy"},
		{2.9, "Neutral"},
		{-3, "Neutral"},
		{-3.1, "Sell"},
		{-7, "Sell"},
		{-7.1, "Strong Sell"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, OutlookLabel(tt.score), "score %v", tt.score)
	}
}

func TestClassifyMFI_UndefinedIsNeutral(t *testing.T) {
	mfi, signal, strength := classifyMFI(math.NaN())
	assert.Equal(t, 50.0, mfi)
	assert.Equal(t, "Neutral", signal)
	assert.Equal(t, 0.0, strength)
}

func TestScore_RandomFramesStayClamped(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 250
	scorer := NewScorer()

	for i := 0; i < 200; i++ {
		price := 1 + rng.Float64()*5000
		frame := newTestFrame(n, price)

		// Push every input well past its realistic range; the score must
		// still land inside [-10, 10].
		frame.SMA20 = fill(n, price*(0.1+rng.Float64()*3))
		frame.SMA50 = fill(n, price*(0.1+rng.Float64()*3))
		frame.SMA200 = fill(n, price*(0.1+rng.Float64()*3))
		frame.MACD = fill(n, -50+rng.Float64()*100)
		frame.MACDSignal = fill(n, -50+rng.Float64()*100)
		frame.RSI = fill(n, -50+rng.Float64()*200)
		frame.MFI = fill(n, -50+rng.Float64()*200)
		frame.BollingerHigh = fill(n, price*(1+rng.Float64()))
		frame.BollingerLow = fill(n, price*rng.Float64())
		frame.Volatility30 = fill(n, rng.Float64()*20)
		for j := range frame.Bars {
			frame.Bars[j].Volume = rng.Float64() * 1e7
		}

		a, err := scorer.Score(frame)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, a.Score, -10.0)
		assert.LessOrEqual(t, a.Score, 10.0)
	}
}
