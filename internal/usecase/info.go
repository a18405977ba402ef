package usecase

import (
	"context"
	"time"

	"github.com/Priyanndarshan/stock-website/internal/domain/models"
	domrepo "github.com/Priyanndarshan/stock-website/internal/domain/repository"
	xlogger "github.com/Priyanndarshan/stock-website/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// InfoFetcher fetches fundamentals for a batch of symbols. Each symbol is
// isolated: a failure becomes an error record under that symbol's key and
// never aborts the rest of the batch.
type InfoFetcher struct {
	provider      domrepo.MarketData
	metrics       domrepo.Metrics
	logger        *xlogger.Logger
	maxConcurrent int
}

func NewInfoFetcher(provider domrepo.MarketData, metrics domrepo.Metrics, logger *xlogger.Logger, maxConcurrent int) *InfoFetcher {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &InfoFetcher{provider: provider, metrics: metrics, logger: logger, maxConcurrent: maxConcurrent}
}

// FetchInfo returns exactly one record per input symbol, full or degenerate.
// Fetches run concurrently but results are recorded by input index, so batch
// order never depends on completion order.
func (f *InfoFetcher) FetchInfo(ctx context.Context, symbols []string) map[string]*models.StockRecord {
	records := make([]*models.StockRecord, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.maxConcurrent)
	for i, symbol := range symbols {
		g.Go(func() error {
			start := time.Now()
			info, err := f.provider.Info(gctx, symbol)
			f.metrics.RecordFetch("info", time.Since(start).Seconds())
			if err != nil {
				f.metrics.RecordFetchError("info")
				f.logger.Error("info fetch failed",
					xlogger.String("symbol", symbol),
					xlogger.Error(err),
				)
				records[i] = &models.StockRecord{Symbol: symbol, Err: err.Error()}
				return nil
			}
			records[i] = normalizeRecord(symbol, info)
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]*models.StockRecord, len(symbols))
	for i, symbol := range symbols {
		out[symbol] = records[i]
	}
	return out
}

// normalizeRecord applies the defaulting rules uniformly: absent upstream
// fields are already zero values in CompanyInfo, which map to 0 or "" here,
// so every known key is always populated. Dividend yield is the one unit
// transform, upstream fraction to percent.
func normalizeRecord(symbol string, info models.CompanyInfo) *models.StockRecord {
	yield := 0.0
	if info.DividendYield != 0 {
		yield = info.DividendYield * 100
	}
	return &models.StockRecord{
		Symbol:           symbol,
		Name:             info.ShortName,
		Sector:           info.Sector,
		Industry:         info.Industry,
		MarketCap:        info.MarketCap,
		PERatio:          info.TrailingPE,
		ForwardPE:        info.ForwardPE,
		DividendYield:    yield,
		TargetPrice:      info.TargetMeanPrice,
		Recommendation:   info.RecommendationKey,
		Beta:             info.Beta,
		DayHigh:          info.DayHigh,
		DayLow:           info.DayLow,
		FiftyTwoWeekHigh: info.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  info.FiftyTwoWeekLow,
		AverageVolume:    info.AverageVolume,
	}
}
