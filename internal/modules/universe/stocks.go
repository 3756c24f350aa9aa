// Package universe provides the reference list of analyzable securities,
// cached with an explicit TTL, and search over it.
package universe

// Stock identifies one listed security in the reference universe.
type Stock struct {
	Ticker   string `json:"ticker"`
	Name     string `json:"name"`
	Exchange string `json:"exchange"`
}

// referenceStocks is the curated NSE/BSE universe. A production deployment
// would load this from the exchange's published symbol directory.
func referenceStocks() []Stock {
	return []Stock{
		{Ticker: "RELIANCE.NS", Name: "Reliance Industries Ltd.", Exchange: "NSE"},
		{Ticker: "TCS.NS", Name: "Tata Consultancy Services Ltd.", Exchange: "NSE"},
		{Ticker: "INFY.NS", Name: "Infosys Ltd.", Exchange: "NSE"},
		{Ticker: "HDFCBANK.NS", Name: "HDFC Bank Ltd.", Exchange: "NSE"},
		{Ticker: "HINDUNILVR.NS", Name: "Hindustan Unilever Ltd.", Exchange: "NSE"},
		{Ticker: "ICICIBANK.NS", Name: "ICICI Bank Ltd.", Exchange: "NSE"},
		{Ticker: "SBIN.NS", Name: "State Bank of India", Exchange: "NSE"},
		{Ticker: "BHARTIARTL.NS", Name: "Bharti Airtel Ltd.", Exchange: "NSE"},
		{Ticker: "BAJFINANCE.NS", Name: "Bajaj Finance Ltd.", Exchange: "NSE"},
		{Ticker: "KOTAKBANK.NS", Name: "Kotak Mahindra Bank Ltd.", Exchange: "NSE"},
		{Ticker: "WIPRO.NS", Name: "Wipro Ltd.", Exchange: "NSE"},
		{Ticker: "ADANIPORTS.NS", Name: "Adani Ports and Special Economic Zone Ltd.", Exchange: "NSE"},
		{Ticker: "AXISBANK.NS", Name: "Axis Bank Ltd.", Exchange: "NSE"},
		{Ticker: "ASIANPAINT.NS", Name: "Asian Paints Ltd.", Exchange: "NSE"},
		{Ticker: "MARUTI.NS", Name: "Maruti Suzuki India Ltd.", Exchange: "NSE"},
		{Ticker: "ITC.NS", Name: "ITC Ltd.", Exchange: "NSE"},
		{Ticker: "TATASTEEL.NS", Name: "Tata Steel Ltd.", Exchange: "NSE"},
		{Ticker: "SUNPHARMA.NS", Name: "Sun Pharmaceutical Industries Ltd.", Exchange: "NSE"},
		{Ticker: "TATAMOTORS.NS", Name: "Tata Motors Ltd.", Exchange: "NSE"},
		{Ticker: "NTPC.NS", Name: "NTPC Ltd.", Exchange: "NSE"},
		{Ticker: "ULTRACEMCO.NS", Name: "UltraTech Cement Ltd.", Exchange: "NSE"},
		{Ticker: "LT.NS", Name: "Larsen & Toubro Ltd.", Exchange: "NSE"},
		{Ticker: "HCLTECH.NS", Name: "HCL Technologies Ltd.", Exchange: "NSE"},
		{Ticker: "TITAN.NS", Name: "Titan Company Ltd.", Exchange: "NSE"},
		{Ticker: "POWERGRID.NS", Name: "Power Grid Corporation of India Ltd.", Exchange: "NSE"},
		{Ticker: "RELIANCE.BO", Name: "Reliance Industries Ltd.", Exchange: "BSE"},
		{Ticker: "TCS.BO", Name: "Tata Consultancy Services Ltd.", Exchange: "BSE"},
		{Ticker: "INFY.BO", Name: "Infosys Ltd.", Exchange: "BSE"},
		{Ticker: "HDFCBANK.BO", Name: "HDFC Bank Ltd.", Exchange: "BSE"},
		{Ticker: "HINDUNILVR.BO", Name: "Hindustan Unilever Ltd.", Exchange: "BSE"},
		{Ticker: "ICICIBANK.BO", Name: "ICICI Bank Ltd.", Exchange: "BSE"},
		{Ticker: "SBIN.BO", Name: "State Bank of India", Exchange: "BSE"},
		{Ticker: "BAJAJFINSV.NS", Name: "Bajaj Finserv Ltd.", Exchange: "NSE"},
		{Ticker: "DIVISLAB.NS", Name: "Divi's Laboratories Ltd.", Exchange: "NSE"},
		{Ticker: "DRREDDY.NS", Name: "Dr. Reddy's Laboratories Ltd.", Exchange: "NSE"},
		{Ticker: "EICHERMOT.NS", Name: "Eicher Motors Ltd.", Exchange: "NSE"},
		{Ticker: "GRASIM.NS", Name: "Grasim Industries Ltd.", Exchange: "NSE"},
		{Ticker: "INDUSINDBK.NS", Name: "IndusInd Bank Ltd.", Exchange: "NSE"},
		{Ticker: "JSWSTEEL.NS", Name: "JSW Steel Ltd.", Exchange: "NSE"},
		{Ticker: "M&M.NS", Name: "Mahindra & Mahindra Ltd.", Exchange: "NSE"},
		{Ticker: "NESTLEIND.NS", Name: "Nestle India Ltd.", Exchange: "NSE"},
		{Ticker: "ONGC.NS", Name: "Oil and Natural Gas Corporation Ltd.", Exchange: "NSE"},
		{Ticker: "SHREECEM.NS", Name: "Shree Cement Ltd.", Exchange: "NSE"},
		{Ticker: "TATACONSUM.NS", Name: "Tata Consumer Products Ltd.", Exchange: "NSE"},
		{Ticker: "TECHM.NS", Name: "Tech Mahindra Ltd.", Exchange: "NSE"},
		{Ticker: "UPL.NS", Name: "UPL Ltd.", Exchange: "NSE"},
		{Ticker: "BPCL.NS", Name: "Bharat Petroleum Corporation Ltd.", Exchange: "NSE"},
		{Ticker: "BRITANNIA.NS", Name: "Britannia Industries Ltd.", Exchange: "NSE"},
		{Ticker: "CIPLA.NS", Name: "Cipla Ltd.", Exchange: "NSE"},
		{Ticker: "COALINDIA.NS", Name: "Coal India Ltd.", Exchange: "NSE"},
		{Ticker: "HEROMOTOCO.NS", Name: "Hero MotoCorp Ltd.", Exchange: "NSE"},
		{Ticker: "HINDALCO.NS", Name: "Hindalco Industries Ltd.", Exchange: "NSE"},
	}
}
