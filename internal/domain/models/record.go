package models

import "encoding/json"

// StockRecord is the normalized per-symbol fundamentals record served to
// clients. Every known key is always present on a successful record, with
// absent upstream fields defaulted to 0 or "". A failed fetch produces a
// degenerate record carrying only the symbol and the error message.
type StockRecord struct {
	Symbol           string
	Name             string
	Sector           string
	Industry         string
	MarketCap        int64
	PERatio          float64
	ForwardPE        float64
	DividendYield    float64 // percent, upstream fraction * 100
	TargetPrice      float64
	Recommendation   string
	Beta             float64
	DayHigh          float64
	DayLow           float64
	FiftyTwoWeekHigh float64
	FiftyTwoWeekLow  float64
	AverageVolume    int64

	// Err is the per-symbol fetch error, empty on success.
	Err string
}

// Failed reports whether this is an error record.
func (r *StockRecord) Failed() bool { return r.Err != "" }

type fullRecordJSON struct {
	Symbol           string  `json:"symbol"`
	Name             string  `json:"name"`
	Sector           string  `json:"sector"`
	Industry         string  `json:"industry"`
	MarketCap        int64   `json:"marketCap"`
	PERatio          float64 `json:"peRatio"`
	ForwardPE        float64 `json:"forwardPE"`
	DividendYield    float64 `json:"dividendYield"`
	TargetPrice      float64 `json:"targetPrice"`
	Recommendation   string  `json:"recommendation"`
	Beta             float64 `json:"beta"`
	DayHigh          float64 `json:"dayHigh"`
	DayLow           float64 `json:"dayLow"`
	FiftyTwoWeekHigh float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow  float64 `json:"fiftyTwoWeekLow"`
	AverageVolume    int64   `json:"averageVolume"`
}

type errorRecordJSON struct {
	Symbol string `json:"symbol"`
	Error  string `json:"error"`
}

// MarshalJSON keeps the two wire shapes distinct: a failed record serializes
// as {symbol, error} only, a successful one carries every known key.
func (r *StockRecord) MarshalJSON() ([]byte, error) {
	if r.Failed() {
		return json.Marshal(errorRecordJSON{Symbol: r.Symbol, Error: r.Err})
	}
	return json.Marshal(fullRecordJSON{
		Symbol:           r.Symbol,
		Name:             r.Name,
		Sector:           r.Sector,
		Industry:         r.Industry,
		MarketCap:        r.MarketCap,
		PERatio:          r.PERatio,
		ForwardPE:        r.ForwardPE,
		DividendYield:    r.DividendYield,
		TargetPrice:      r.TargetPrice,
		Recommendation:   r.Recommendation,
		Beta:             r.Beta,
		DayHigh:          r.DayHigh,
		DayLow:           r.DayLow,
		FiftyTwoWeekHigh: r.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  r.FiftyTwoWeekLow,
		AverageVolume:    r.AverageVolume,
	})
}
