package models

import "time"

// Bar is a single OHLCV row from the market-data provider.
// Bars for a symbol are ordered ascending by time and never mutated after fetch.
type Bar struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// NewsItem is a single headline for a symbol.
type NewsItem struct {
	Title   string
	Summary string
}

// CompanyInfo is the raw fundamentals bundle exactly as the provider reports it.
// Zero values mean the upstream field was absent; normalization into a
// StockRecord happens in the usecase layer.
type CompanyInfo struct {
	Symbol            string
	ShortName         string
	Sector            string
	Industry          string
	MarketCap         int64
	TrailingPE        float64
	ForwardPE         float64
	DividendYield     float64 // fraction, e.g. 0.0044
	TargetMeanPrice   float64
	RecommendationKey string
	Beta              float64
	DayHigh           float64
	DayLow            float64
	FiftyTwoWeekHigh  float64
	FiftyTwoWeekLow   float64
	AverageVolume     int64
}
