package models

// Requests for the stock HTTP endpoints. Defined in domain for consistency and reuse.

// StockDataRequest is the body of POST /get_stock_data. Period and interval
// are opaque provider strings, validated only upstream.
type StockDataRequest struct {
	Symbol         string   `json:"symbol" default:"AAPL" validate:"required"`
	Period         string   `json:"period" default:"1d"`
	Interval       string   `json:"interval" default:"1m"`
	CompareSymbols []string `json:"compareSymbols"`
}

// StockInfoRequest is the body of POST /get_stock_info. It accepts two
// shapes: the list shape carries a symbols array, the legacy shape carries
// symbol + compareSymbols and selects alias emission in the response.
type StockInfoRequest struct {
	Symbols        []string `json:"symbols"`
	Symbol         string   `json:"symbol" default:"AAPL" validate:"required"`
	CompareSymbols []string `json:"compareSymbols"`
}

// ListShape reports whether the request carried a symbols array. A present
// but empty array still counts as the list shape.
func (r *StockInfoRequest) ListShape() bool { return r.Symbols != nil }

// BatchSymbols resolves the ordered set of symbols to fetch for either shape.
func (r *StockInfoRequest) BatchSymbols() []string {
	if r.ListShape() {
		return r.Symbols
	}
	batch := make([]string, 0, 1+len(r.CompareSymbols))
	batch = append(batch, r.Symbol)
	batch = append(batch, r.CompareSymbols...)
	return batch
}
