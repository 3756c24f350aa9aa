package yahoo

import (
	"fmt"
	"time"

	"github.com/aristath/advisor/internal/domain"
)

// chartResponse mirrors the v8 chart endpoint.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// toSeries converts the chart payload into an ordered bar series. Rows with a
// missing close are dropped; the provider pads holidays with nulls.
func (r *chartResponse) toSeries() (domain.PriceSeries, error) {
	if r.Chart.Error != nil {
		return nil, fmt.Errorf("provider error: %s", r.Chart.Error.Description)
	}
	if len(r.Chart.Result) == 0 || len(r.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("empty chart result")
	}

	result := r.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	series := make(domain.PriceSeries, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}
		bar := domain.PriceBar{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *quote.Close[i],
		}
		if i < len(quote.Open) && quote.Open[i] != nil {
			bar.Open = *quote.Open[i]
		}
		if i < len(quote.High) && quote.High[i] != nil {
			bar.High = *quote.High[i]
		} else {
			bar.High = bar.Close
		}
		if i < len(quote.Low) && quote.Low[i] != nil {
			bar.Low = *quote.Low[i]
		} else {
			bar.Low = bar.Close
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			bar.Volume = *quote.Volume[i]
		}
		series = append(series, bar)
	}

	if len(series) == 0 {
		return nil, fmt.Errorf("no usable bars in chart result")
	}
	return series, nil
}

// rawValue is the provider's {raw, fmt} wrapper around numeric fields.
type rawValue struct {
	Raw *float64 `json:"raw"`
}

// quoteSummaryResponse mirrors the v10 quoteSummary endpoint, limited to the
// modules the engine scores on.
type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			AssetProfile *struct {
				Sector   string `json:"sector"`
				Industry string `json:"industry"`
			} `json:"assetProfile"`
			Price *struct {
				LongName  string    `json:"longName"`
				ShortName string    `json:"shortName"`
				MarketCap *rawValue `json:"marketCap"`
			} `json:"price"`
			SummaryDetail *struct {
				TrailingPE    *rawValue `json:"trailingPE"`
				ForwardPE     *rawValue `json:"forwardPE"`
				DividendYield *rawValue `json:"dividendYield"`
				Beta          *rawValue `json:"beta"`
				MarketCap     *rawValue `json:"marketCap"`
			} `json:"summaryDetail"`
			DefaultKeyStatistics *struct {
				PegRatio    *rawValue `json:"pegRatio"`
				PriceToBook *rawValue `json:"priceToBook"`
				TrailingEps *rawValue `json:"trailingEps"`
			} `json:"defaultKeyStatistics"`
			FinancialData *struct {
				DebtToEquity   *rawValue `json:"debtToEquity"`
				ReturnOnEquity *rawValue `json:"returnOnEquity"`
				ProfitMargins  *rawValue `json:"profitMargins"`
				FreeCashflow   *rawValue `json:"freeCashflow"`
			} `json:"financialData"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

func (r *quoteSummaryResponse) toSnapshot(ticker string) (*domain.FundamentalSnapshot, error) {
	if r.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("provider error: %s", r.QuoteSummary.Error.Description)
	}
	if len(r.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("empty quote summary result")
	}

	result := r.QuoteSummary.Result[0]
	snap := &domain.FundamentalSnapshot{Ticker: ticker, Sector: "Unknown"}

	if result.AssetProfile != nil {
		if result.AssetProfile.Sector != "" {
			snap.Sector = result.AssetProfile.Sector
		}
		snap.Industry = result.AssetProfile.Industry
	}
	if result.Price != nil {
		snap.Name = result.Price.LongName
		if snap.Name == "" {
			snap.Name = result.Price.ShortName
		}
		snap.MarketCap = raw(result.Price.MarketCap)
	}
	if result.SummaryDetail != nil {
		snap.PERatio = raw(result.SummaryDetail.TrailingPE)
		snap.ForwardPE = raw(result.SummaryDetail.ForwardPE)
		snap.Beta = raw(result.SummaryDetail.Beta)
		if snap.MarketCap == nil {
			snap.MarketCap = raw(result.SummaryDetail.MarketCap)
		}
		// Provider reports yield as a fraction, scoring expects percent.
		if y := raw(result.SummaryDetail.DividendYield); y != nil {
			pct := *y * 100
			snap.DividendYield = &pct
		}
	}
	if result.DefaultKeyStatistics != nil {
		snap.PEGRatio = raw(result.DefaultKeyStatistics.PegRatio)
		snap.PriceToBook = raw(result.DefaultKeyStatistics.PriceToBook)
		snap.EPS = raw(result.DefaultKeyStatistics.TrailingEps)
	}
	if result.FinancialData != nil {
		snap.ReturnOnEquity = raw(result.FinancialData.ReturnOnEquity)
		snap.ProfitMargin = raw(result.FinancialData.ProfitMargins)
		snap.FreeCashFlow = raw(result.FinancialData.FreeCashflow)
		// Reported as a percentage (e.g. 41.3), scoring expects a ratio.
		if d := raw(result.FinancialData.DebtToEquity); d != nil {
			ratio := *d / 100
			snap.DebtToEquity = &ratio
		}
	}

	return snap, nil
}

func raw(v *rawValue) *float64 {
	if v == nil || v.Raw == nil {
		return nil
	}
	out := *v.Raw
	return &out
}
