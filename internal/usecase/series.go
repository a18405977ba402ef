package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/Priyanndarshan/stock-website/internal/domain/models"
	domrepo "github.com/Priyanndarshan/stock-website/internal/domain/repository"
	xlogger "github.com/Priyanndarshan/stock-website/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// TimestampLayout is the wire format for chart timestamps.
const TimestampLayout = "2006-01-02 15:04:05"

// SeriesFetcher wraps provider history calls for a primary symbol and a set
// of comparison symbols. A primary fetch failure is fatal to the request;
// comparison failures are isolated per symbol.
type SeriesFetcher struct {
	provider      domrepo.MarketData
	metrics       domrepo.Metrics
	logger        *xlogger.Logger
	maxConcurrent int
}

func NewSeriesFetcher(provider domrepo.MarketData, metrics domrepo.Metrics, logger *xlogger.Logger, maxConcurrent int) *SeriesFetcher {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &SeriesFetcher{provider: provider, metrics: metrics, logger: logger, maxConcurrent: maxConcurrent}
}

// FetchSeries fetches the primary symbol's bars. An empty slice is the
// "no data" signal, not an error.
func (f *SeriesFetcher) FetchSeries(ctx context.Context, symbol, period, interval string) ([]models.Bar, error) {
	bars, err := f.timedHistory(ctx, symbol, period, interval)
	if err != nil {
		return nil, fmt.Errorf("fetch series %s: %w", symbol, err)
	}
	return bars, nil
}

// FetchComparisons fetches each comparison symbol independently, running up
// to maxConcurrent provider calls at once. Results are keyed by symbol: a
// failed fetch yields an error entry, an empty series yields no entry at
// all, and neither aborts the batch.
func (f *SeriesFetcher) FetchComparisons(ctx context.Context, symbols []string, period, interval string) map[string]*models.CompareEntry {
	entries := make([]*models.CompareEntry, len(symbols))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(f.maxConcurrent)
	for i, symbol := range symbols {
		g.Go(func() error {
			bars, err := f.timedHistory(gctx, symbol, period, interval)
			if err != nil {
				f.logger.Error("comparison fetch failed",
					xlogger.String("symbol", symbol),
					xlogger.Error(err),
				)
				entries[i] = &models.CompareEntry{Err: err.Error()}
				return nil
			}
			if len(bars) == 0 {
				f.logger.Warn("no data for comparison symbol", xlogger.String("symbol", symbol))
				return nil
			}
			entries[i] = buildCompareEntry(bars)
			return nil
		})
	}
	_ = g.Wait()

	// fold by input order so duplicates resolve deterministically
	out := make(map[string]*models.CompareEntry, len(symbols))
	for i, symbol := range symbols {
		if entries[i] != nil {
			out[symbol] = entries[i]
		}
	}
	return out
}

func (f *SeriesFetcher) timedHistory(ctx context.Context, symbol, period, interval string) ([]models.Bar, error) {
	start := time.Now()
	bars, err := f.provider.History(ctx, symbol, period, interval)
	f.metrics.RecordFetch("history", time.Since(start).Seconds())
	if err != nil {
		f.metrics.RecordFetchError("history")
	}
	return bars, err
}

// buildCompareEntry derives the close series and change stats for one
// comparison symbol. With fewer than two rows the stats stay nil: "no prior
// point" must not read as "no change".
func buildCompareEntry(bars []models.Bar) *models.CompareEntry {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	entry := &models.CompareEntry{Close: closes}
	if len(closes) < 2 {
		return entry
	}

	last := closes[len(closes)-1]
	prev := closes[len(closes)-2]
	change := last - prev
	pct := change / prev * 100

	entry.LastPrice = &last
	entry.Change = &change
	entry.PercentChange = &pct
	return entry
}

// FormatTimestamps renders bar times in the wire format, in each bar's own
// timezone.
func FormatTimestamps(bars []models.Bar) []string {
	out := make([]string, len(bars))
	for i, b := range bars {
		out[i] = b.Time.Format(TimestampLayout)
	}
	return out
}
