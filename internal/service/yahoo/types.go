package yahoo

import "fmt"

// apiError is the error object Yahoo embeds in chart and quoteSummary
// responses.
type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// rawValue unwraps Yahoo's {raw, fmt} number objects. An absent or empty
// object leaves Raw at zero.
type rawValue struct {
	Raw float64 `json:"raw"`
}

type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *apiError     `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Meta struct {
		ExchangeTimezoneName string `json:"exchangeTimezoneName"`
		Gmtoffset            int    `json:"gmtoffset"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []chartQuote `json:"quote"`
	} `json:"indicators"`
}

// Quote arrays carry null for gaps, hence the pointer elements.
type chartQuote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []quoteSummaryResult `json:"result"`
		Error  *apiError            `json:"error"`
	} `json:"quoteSummary"`
}

type quoteSummaryResult struct {
	Price struct {
		ShortName string   `json:"shortName"`
		MarketCap rawValue `json:"marketCap"`
	} `json:"price"`
	AssetProfile struct {
		Sector   string `json:"sector"`
		Industry string `json:"industry"`
	} `json:"assetProfile"`
	SummaryDetail struct {
		TrailingPE       rawValue `json:"trailingPE"`
		ForwardPE        rawValue `json:"forwardPE"`
		DividendYield    rawValue `json:"dividendYield"`
		Beta             rawValue `json:"beta"`
		DayHigh          rawValue `json:"dayHigh"`
		DayLow           rawValue `json:"dayLow"`
		FiftyTwoWeekHigh rawValue `json:"fiftyTwoWeekHigh"`
		FiftyTwoWeekLow  rawValue `json:"fiftyTwoWeekLow"`
		AverageVolume    rawValue `json:"averageVolume"`
	} `json:"summaryDetail"`
	FinancialData struct {
		TargetMeanPrice   rawValue `json:"targetMeanPrice"`
		RecommendationKey string   `json:"recommendationKey"`
	} `json:"financialData"`
}

type searchResponse struct {
	News []searchNews `json:"news"`
}

type searchNews struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
}
