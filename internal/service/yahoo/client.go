package yahoo

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Priyanndarshan/stock-website/internal/domain/models"
	drepo "github.com/Priyanndarshan/stock-website/internal/domain/repository"
	"github.com/Priyanndarshan/stock-website/internal/service/ratelimit"
	xhttp "github.com/Priyanndarshan/stock-website/pkg/http"
	"github.com/Priyanndarshan/stock-website/pkg/util"
)

const quoteSummaryModules = "price,assetProfile,summaryDetail,financialData"

// Client implements a MarketData provider backed by the Yahoo Finance
// public REST endpoints.
type Client struct {
	http      *xhttp.Client
	baseURL   string
	userAgent string
	newsCount int
	limiter   *ratelimit.Limiter
}

// New creates a new Yahoo Finance MarketData provider.
func New(baseURL, userAgent string, timeout time.Duration, newsCount int, limiter *ratelimit.Limiter) drepo.MarketData {
	return &Client{
		http:      xhttp.NewClient(xhttp.WithTimeout(timeout)),
		baseURL:   baseURL,
		userAgent: userAgent,
		newsCount: newsCount,
		limiter:   limiter,
	}
}

// History returns ascending OHLCV bars for the symbol, or an empty slice
// when the provider has no rows for the period. Bar times carry the
// exchange timezone reported in the chart meta.
func (c *Client) History(ctx context.Context, symbol, period, interval string) ([]models.Bar, error) {
	var res chartResponse
	err := c.get(ctx, "/v8/finance/chart/"+symbol, map[string][]string{
		"range":    {period},
		"interval": {interval},
	}, &res)
	if err != nil {
		return nil, fmt.Errorf("chart %s: %w", symbol, err)
	}
	if res.Chart.Error != nil {
		return nil, fmt.Errorf("chart %s: %w", symbol, res.Chart.Error)
	}
	if len(res.Chart.Result) == 0 {
		return nil, nil
	}

	r := res.Chart.Result[0]
	if len(r.Timestamp) == 0 || len(r.Indicators.Quote) == 0 {
		return nil, nil
	}
	q := r.Indicators.Quote[0]
	loc := util.Location(r.Meta.ExchangeTimezoneName, r.Meta.Gmtoffset)

	bars := make([]models.Bar, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		// rows with a null close are gaps, not prices
		if i >= len(q.Close) || q.Close[i] == nil {
			continue
		}
		bar := models.Bar{
			Time:  time.Unix(ts, 0).In(loc),
			Close: *q.Close[i],
		}
		if i < len(q.Open) && q.Open[i] != nil {
			bar.Open = *q.Open[i]
		}
		if i < len(q.High) && q.High[i] != nil {
			bar.High = *q.High[i]
		}
		if i < len(q.Low) && q.Low[i] != nil {
			bar.Low = *q.Low[i]
		}
		if i < len(q.Volume) && q.Volume[i] != nil {
			bar.Volume = *q.Volume[i]
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

// Info returns the raw fundamentals bundle for the symbol. Absent upstream
// fields are left at their zero values.
func (c *Client) Info(ctx context.Context, symbol string) (models.CompanyInfo, error) {
	var res quoteSummaryResponse
	err := c.get(ctx, "/v10/finance/quoteSummary/"+symbol, map[string][]string{
		"modules": {quoteSummaryModules},
	}, &res)
	if err != nil {
		return models.CompanyInfo{}, fmt.Errorf("quote summary %s: %w", symbol, err)
	}
	if res.QuoteSummary.Error != nil {
		return models.CompanyInfo{}, fmt.Errorf("quote summary %s: %w", symbol, res.QuoteSummary.Error)
	}
	if len(res.QuoteSummary.Result) == 0 {
		return models.CompanyInfo{}, fmt.Errorf("quote summary %s: empty result", symbol)
	}

	r := res.QuoteSummary.Result[0]
	return models.CompanyInfo{
		Symbol:            symbol,
		ShortName:         r.Price.ShortName,
		Sector:            r.AssetProfile.Sector,
		Industry:          r.AssetProfile.Industry,
		MarketCap:         int64(r.Price.MarketCap.Raw),
		TrailingPE:        r.SummaryDetail.TrailingPE.Raw,
		ForwardPE:         r.SummaryDetail.ForwardPE.Raw,
		DividendYield:     r.SummaryDetail.DividendYield.Raw,
		TargetMeanPrice:   r.FinancialData.TargetMeanPrice.Raw,
		RecommendationKey: r.FinancialData.RecommendationKey,
		Beta:              r.SummaryDetail.Beta.Raw,
		DayHigh:           r.SummaryDetail.DayHigh.Raw,
		DayLow:            r.SummaryDetail.DayLow.Raw,
		FiftyTwoWeekHigh:  r.SummaryDetail.FiftyTwoWeekHigh.Raw,
		FiftyTwoWeekLow:   r.SummaryDetail.FiftyTwoWeekLow.Raw,
		AverageVolume:     int64(r.SummaryDetail.AverageVolume.Raw),
	}, nil
}

// News returns recent headlines for the symbol.
func (c *Client) News(ctx context.Context, symbol string) ([]models.NewsItem, error) {
	var res searchResponse
	err := c.get(ctx, "/v1/finance/search", map[string][]string{
		"q":           {symbol},
		"quotesCount": {"0"},
		"newsCount":   {strconv.Itoa(c.newsCount)},
	}, &res)
	if err != nil {
		return nil, fmt.Errorf("news %s: %w", symbol, err)
	}

	items := make([]models.NewsItem, 0, len(res.News))
	for _, n := range res.News {
		items = append(items, models.NewsItem{Title: n.Title, Summary: n.Summary})
	}
	return items, nil
}

func (c *Client) get(ctx context.Context, path string, params map[string][]string, dest interface{}) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx, "yahoo"); err != nil {
			return fmt.Errorf("rate limit: %w", err)
		}
	}
	return c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      http.MethodGet,
		URL:         c.baseURL + path,
		QueryParams: params,
		Headers:     map[string]string{"User-Agent": c.userAgent},
	}, dest)
}
