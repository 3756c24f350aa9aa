package technical

// Trend labels derived from the ordering of price and moving averages.
const (
	TrendStrongUptrend   = "Strong Uptrend"
	TrendUptrend         = "Uptrend"
	TrendConsolidating   = "Consolidating"
	TrendDowntrend       = "Downtrend"
	TrendStrongDowntrend = "Strong Downtrend"
)

// Analysis holds the full technical assessment of a security. Signal labels
// carry the qualitative reading; the *Strength fields carry the numeric
// contribution each signal makes to the combined score.
type Analysis struct {
	Price float64 `json:"price"`

	Trend         string  `json:"trend"`
	TrendStrength float64 `json:"trend_strength"`
	SMA20         float64 `json:"sma_20"`
	SMA50         float64 `json:"sma_50"`
	SMA200        float64 `json:"sma_200"`
	GoldenCross   bool    `json:"golden_cross"`
	DeathCross    bool    `json:"death_cross"`

	MACD          float64 `json:"macd"`
	MACDSignal    float64 `json:"macd_signal"`
	MACDHist      float64 `json:"macd_hist"`
	MACDStrength  float64 `json:"macd_strength"`
	MACDCrossover string  `json:"macd_crossover,omitempty"` // "Bullish", "Bearish" or empty

	RSI           float64 `json:"rsi"`
	RSISignal     string  `json:"rsi_signal"`
	RSIStrength   float64 `json:"rsi_strength"`
	RSIDivergence string  `json:"rsi_divergence,omitempty"` // "Bullish", "Bearish" or empty

	BollingerHigh     float64 `json:"bollinger_high"`
	BollingerMid      float64 `json:"bollinger_mid"`
	BollingerLow      float64 `json:"bollinger_low"`
	BollingerSignal   string  `json:"bollinger_signal"`
	BollingerStrength float64 `json:"bollinger_strength"`

	ADX       float64 `json:"adx"`
	ADXSignal string  `json:"adx_signal"`

	Volatility       float64 `json:"volatility"`
	VolatilitySignal string  `json:"volatility_signal"`

	VolumeSignal   string  `json:"volume_signal"`
	VolumeStrength float64 `json:"volume_strength"`
	OBVSignal      string  `json:"obv_signal"`

	MFI         float64 `json:"mfi"`
	MFISignal   string  `json:"mfi_signal"`
	MFIStrength float64 `json:"mfi_strength"`

	Score   float64 `json:"tech_score"`
	Outlook string  `json:"overall_technical"`
}
