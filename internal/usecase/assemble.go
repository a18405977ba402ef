package usecase

import (
	"context"
	"fmt"

	"github.com/Priyanndarshan/stock-website/internal/domain/models"
	domrepo "github.com/Priyanndarshan/stock-website/internal/domain/repository"
	xhttp "github.com/Priyanndarshan/stock-website/pkg/http"
)

// ResponseAssembler merges fetcher and aggregator outputs into the two
// public response shapes. Everything it builds is request-scoped.
type ResponseAssembler struct {
	series   *SeriesFetcher
	info     *InfoFetcher
	agg      *ComparativeAggregator
	provider domrepo.MarketData
	metrics  domrepo.Metrics
}

func NewResponseAssembler(series *SeriesFetcher, info *InfoFetcher, agg *ComparativeAggregator, provider domrepo.MarketData, metrics domrepo.Metrics) *ResponseAssembler {
	return &ResponseAssembler{series: series, info: info, agg: agg, provider: provider, metrics: metrics}
}

// BuildChartResponse resolves the primary series, news and comparison data
// for /get_stock_data. An empty primary series short-circuits to a
// not-found error before any comparison is attempted; a primary fetch error
// is fatal to the request.
func (a *ResponseAssembler) BuildChartResponse(ctx context.Context, req *models.StockDataRequest) (*models.ChartResponse, error) {
	a.metrics.RecordRequest("get_stock_data")
	a.metrics.RecordBatchSize("get_stock_data", 1+len(req.CompareSymbols))

	bars, err := a.series.FetchSeries(ctx, req.Symbol, req.Period, req.Interval)
	if err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, xhttp.NotFoundError("No data found")
	}

	news, err := a.provider.News(ctx, req.Symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch news %s: %w", req.Symbol, err)
	}

	res := &models.ChartResponse{
		Symbol:      req.Symbol,
		Timestamps:  FormatTimestamps(bars),
		Open:        make([]float64, len(bars)),
		High:        make([]float64, len(bars)),
		Low:         make([]float64, len(bars)),
		Close:       make([]float64, len(bars)),
		Volume:      make([]int64, len(bars)),
		News:        make([][2]string, 0, len(news)),
		CompareData: a.series.FetchComparisons(ctx, req.CompareSymbols, req.Period, req.Interval),
	}
	for i, b := range bars {
		res.Open[i] = b.Open
		res.High[i] = b.High
		res.Low[i] = b.Low
		res.Close[i] = b.Close
		res.Volume[i] = b.Volume
	}
	for _, n := range news {
		res.News = append(res.News, [2]string{n.Title, n.Summary})
	}
	return res, nil
}

// BuildInfoResponse resolves fundamentals and comparative metrics for
// /get_stock_info. The legacy request shape additionally gets the mainStock
// and compareStocks aliases; the list shape suppresses them.
func (a *ResponseAssembler) BuildInfoResponse(ctx context.Context, req *models.StockInfoRequest) (interface{}, error) {
	symbols := req.BatchSymbols()
	a.metrics.RecordRequest("get_stock_info")
	a.metrics.RecordBatchSize("get_stock_info", len(symbols))

	stocks := a.info.FetchInfo(ctx, symbols)
	base := models.InfoResponse{
		Stocks:             stocks,
		ComparativeMetrics: a.agg.Aggregate(symbols, stocks),
	}
	if req.ListShape() {
		return &base, nil
	}

	compare := make(map[string]*models.StockRecord, len(req.CompareSymbols))
	for _, symbol := range req.CompareSymbols {
		if rec, ok := stocks[symbol]; ok {
			compare[symbol] = rec
		}
	}
	return &models.LegacyInfoResponse{
		InfoResponse:  base,
		MainStock:     stocks[req.Symbol],
		CompareStocks: compare,
	}, nil
}
