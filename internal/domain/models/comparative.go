package models

// Extremes names the highest and lowest valued symbols for one metric within
// a batch. Nil means no symbol in the batch had a usable value.
type Extremes struct {
	Highest *string `json:"highest"`
	Lowest  *string `json:"lowest"`
}

// ComparativeMetrics is derived per request from the current batch of
// records; it is stateless and never cached.
type ComparativeMetrics struct {
	MarketCap      Extremes            `json:"marketCap"`
	PERatio        Extremes            `json:"peRatio"`
	DividendYield  Extremes            `json:"dividendYield"`
	SectorGroups   map[string][]string `json:"sectorGroups"`
	IndustryGroups map[string][]string `json:"industryGroups"`
}
