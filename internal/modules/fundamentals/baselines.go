package fundamentals

// SectorBaseline holds per-sector average valuation and health metrics used
// as comparison baselines.
type SectorBaseline struct {
	PERatio        float64 `json:"pe_ratio"`
	PriceToBook    float64 `json:"price_to_book"`
	DividendYield  float64 `json:"dividend_yield"`
	DebtToEquity   float64 `json:"debt_to_equity"`
	ReturnOnEquity float64 `json:"return_on_equity"`
	ProfitMargin   float64 `json:"profit_margin"`
}

// DefaultBaseline is used for sectors without a dedicated entry.
var DefaultBaseline = SectorBaseline{
	PERatio:        20.0,
	PriceToBook:    2.5,
	DividendYield:  2.0,
	DebtToEquity:   0.4,
	ReturnOnEquity: 0.15,
	ProfitMargin:   0.1,
}

// sectorBaselines are reference averages by sector. These are static
// reference values; a production deployment would refresh them from a data
// vendor.
var sectorBaselines = map[string]SectorBaseline{
	"Technology": {
		PERatio:        25.0,
		PriceToBook:    5.0,
		DividendYield:  1.0,
		DebtToEquity:   0.2,
		ReturnOnEquity: 0.22,
		ProfitMargin:   0.15,
	},
	"Financial Services": {
		PERatio:        15.0,
		PriceToBook:    1.2,
		DividendYield:  3.5,
		DebtToEquity:   0.6,
		ReturnOnEquity: 0.12,
		ProfitMargin:   0.2,
	},
	"Energy": {
		PERatio:        12.0,
		PriceToBook:    1.5,
		DividendYield:  4.0,
		DebtToEquity:   0.45,
		ReturnOnEquity: 0.1,
		ProfitMargin:   0.08,
	},
	"Healthcare": {
		PERatio:        22.0,
		PriceToBook:    4.0,
		DividendYield:  1.5,
		DebtToEquity:   0.25,
		ReturnOnEquity: 0.18,
		ProfitMargin:   0.12,
	},
	"Consumer Cyclical": {
		PERatio:        18.0,
		PriceToBook:    3.0,
		DividendYield:  2.0,
		DebtToEquity:   0.35,
		ReturnOnEquity: 0.16,
		ProfitMargin:   0.09,
	},
	"Industrials": {
		PERatio:        20.0,
		PriceToBook:    2.8,
		DividendYield:  2.2,
		DebtToEquity:   0.4,
		ReturnOnEquity: 0.14,
		ProfitMargin:   0.08,
	},
}

// BaselineForSector returns the reference metrics for a sector, falling back
// to DefaultBaseline for unknown sectors.
func BaselineForSector(sector string) SectorBaseline {
	if b, ok := sectorBaselines[sector]; ok {
		return b
	}
	return DefaultBaseline
}
