package usecase

import "github.com/Priyanndarshan/stock-website/internal/domain/models"

// ComparativeAggregator computes cross-symbol rankings and groupings from a
// batch of fundamentals records. It is stateless; everything derives from
// the current batch.
type ComparativeAggregator struct{}

func NewComparativeAggregator() *ComparativeAggregator {
	return &ComparativeAggregator{}
}

// Aggregate scans records in the order given by symbols. A symbol is a
// ranking candidate for a metric only when its value is nonzero; zero and
// missing are excluded rather than treated as the minimum. Ties resolve to
// the first occurrence in input order.
//
// Error records participate in grouping: they have no sector or industry,
// so they land under "Unknown" for both. That mirrors the historical
// behavior of this endpoint.
func (a *ComparativeAggregator) Aggregate(symbols []string, records map[string]*models.StockRecord) models.ComparativeMetrics {
	var marketCap, peRatio, dividendYield extremeTracker

	sectors := make(map[string][]string)
	industries := make(map[string][]string)

	for _, symbol := range symbols {
		rec, ok := records[symbol]
		if !ok {
			continue
		}

		if !rec.Failed() {
			marketCap.observe(symbol, float64(rec.MarketCap))
			peRatio.observe(symbol, rec.PERatio)
			dividendYield.observe(symbol, rec.DividendYield)
		}

		sector := rec.Sector
		if sector == "" {
			sector = "Unknown"
		}
		industry := rec.Industry
		if industry == "" {
			industry = "Unknown"
		}
		sectors[sector] = append(sectors[sector], symbol)
		industries[industry] = append(industries[industry], symbol)
	}

	return models.ComparativeMetrics{
		MarketCap:      marketCap.extremes(),
		PERatio:        peRatio.extremes(),
		DividendYield:  dividendYield.extremes(),
		SectorGroups:   sectors,
		IndustryGroups: industries,
	}
}

// extremeTracker keeps the first-seen max and min over nonzero observations.
type extremeTracker struct {
	seen    bool
	highSym string
	highVal float64
	lowSym  string
	lowVal  float64
}

func (t *extremeTracker) observe(symbol string, value float64) {
	if value == 0 {
		return
	}
	if !t.seen {
		t.seen = true
		t.highSym, t.highVal = symbol, value
		t.lowSym, t.lowVal = symbol, value
		return
	}
	// strict comparisons keep the first occurrence on ties
	if value > t.highVal {
		t.highSym, t.highVal = symbol, value
	}
	if value < t.lowVal {
		t.lowSym, t.lowVal = symbol, value
	}
}

func (t *extremeTracker) extremes() models.Extremes {
	if !t.seen {
		return models.Extremes{}
	}
	high, low := t.highSym, t.lowSym
	return models.Extremes{Highest: &high, Lowest: &low}
}
