package models

import "encoding/json"

// CompareEntry is the per-symbol slice of a chart comparison. LastPrice,
// Change and PercentChange are nil when the series has fewer than two rows;
// a nil value is "no prior point", not zero change.
type CompareEntry struct {
	Close         []float64
	LastPrice     *float64
	Change        *float64
	PercentChange *float64

	// Err is set when fetching this comparison symbol failed.
	Err string
}

type compareEntryJSON struct {
	Close         []float64 `json:"close"`
	LastPrice     *float64  `json:"lastPrice"`
	Change        *float64  `json:"change"`
	PercentChange *float64  `json:"percentChange"`
}

type compareErrorJSON struct {
	Error string `json:"error"`
}

// MarshalJSON serializes a failed comparison as {error} only.
func (e *CompareEntry) MarshalJSON() ([]byte, error) {
	if e.Err != "" {
		return json.Marshal(compareErrorJSON{Error: e.Err})
	}
	return json.Marshal(compareEntryJSON{
		Close:         e.Close,
		LastPrice:     e.LastPrice,
		Change:        e.Change,
		PercentChange: e.PercentChange,
	})
}

// ChartResponse is the time-series payload for /get_stock_data.
// Timestamps are formatted YYYY-MM-DD HH:MM:SS in the exchange timezone.
type ChartResponse struct {
	Symbol      string                   `json:"symbol"`
	Timestamps  []string                 `json:"timestamps"`
	Open        []float64                `json:"open"`
	High        []float64                `json:"high"`
	Low         []float64                `json:"low"`
	Close       []float64                `json:"close"`
	Volume      []int64                  `json:"volume"`
	News        [][2]string              `json:"news"`
	CompareData map[string]*CompareEntry `json:"compareData"`
}

// InfoResponse is the fundamentals payload for /get_stock_info in its
// list-shape form.
type InfoResponse struct {
	Stocks             map[string]*StockRecord `json:"stocks"`
	ComparativeMetrics ComparativeMetrics      `json:"comparativeMetrics"`
}

// LegacyInfoResponse extends InfoResponse with the backward-compatible
// aliases emitted for the symbol+compareSymbols request shape. The alias
// fields are always present, even when the compare map is empty.
type LegacyInfoResponse struct {
	InfoResponse
	MainStock     *StockRecord            `json:"mainStock"`
	CompareStocks map[string]*StockRecord `json:"compareStocks"`
}
