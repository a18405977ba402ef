package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Priyanndarshan/stock-website/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func barsAt(closes ...float64) []models.Bar {
	base := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	bars := make([]models.Bar, len(closes))
	for i, c := range closes {
		bars[i] = models.Bar{Time: base.Add(time.Duration(i) * time.Minute), Close: c}
	}
	return bars
}

func TestFetchSeriesEmptyIsNotAnError(t *testing.T) {
	provider := &stubMarket{histories: map[string][]models.Bar{}}
	f := NewSeriesFetcher(provider, nopMetrics{}, testLogger(t), 2)

	bars, err := f.FetchSeries(context.Background(), "GHOST", "1d", "1m")
	require.NoError(t, err)
	assert.Empty(t, bars)
}

func TestFetchSeriesPropagatesProviderError(t *testing.T) {
	provider := &stubMarket{histErrs: map[string]error{"AAPL": errors.New("upstream 500")}}
	f := NewSeriesFetcher(provider, nopMetrics{}, testLogger(t), 2)

	_, err := f.FetchSeries(context.Background(), "AAPL", "1d", "1m")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream 500")
}

func TestFetchComparisonsPartialFailure(t *testing.T) {
	provider := &stubMarket{
		histories: map[string][]models.Bar{
			"MSFT":  barsAt(410, 414.1),
			"EMPTY": {},
		},
		histErrs: map[string]error{"BAD": errors.New("no such ticker")},
	}
	f := NewSeriesFetcher(provider, nopMetrics{}, testLogger(t), 3)

	got := f.FetchComparisons(context.Background(), []string{"MSFT", "BAD", "EMPTY"}, "1d", "1m")

	require.Contains(t, got, "MSFT")
	require.Contains(t, got, "BAD")
	// empty series is omitted, not an error
	assert.NotContains(t, got, "EMPTY")

	assert.NotEmpty(t, got["BAD"].Err)
	assert.Contains(t, got["BAD"].Err, "no such ticker")

	msft := got["MSFT"]
	assert.Empty(t, msft.Err)
	assert.Equal(t, []float64{410, 414.1}, msft.Close)
	require.NotNil(t, msft.LastPrice)
	assert.InDelta(t, 414.1, *msft.LastPrice, 1e-9)
	require.NotNil(t, msft.Change)
	assert.InDelta(t, 4.1, *msft.Change, 1e-9)
	require.NotNil(t, msft.PercentChange)
	assert.InDelta(t, 4.1/410*100, *msft.PercentChange, 1e-9)
}

func TestFetchComparisonsSingleRowHasNilStats(t *testing.T) {
	provider := &stubMarket{
		histories: map[string][]models.Bar{"SOLO": barsAt(99.5)},
	}
	f := NewSeriesFetcher(provider, nopMetrics{}, testLogger(t), 2)

	got := f.FetchComparisons(context.Background(), []string{"SOLO"}, "1d", "1m")

	solo := got["SOLO"]
	require.NotNil(t, solo)
	assert.Equal(t, []float64{99.5}, solo.Close)
	// one row means no prior point, which is not the same as zero change
	assert.Nil(t, solo.LastPrice)
	assert.Nil(t, solo.Change)
	assert.Nil(t, solo.PercentChange)
}

func TestFetchComparisonsPreservesInputOrderUnderConcurrency(t *testing.T) {
	histories := map[string][]models.Bar{}
	symbols := make([]string, 0, 8)
	for _, s := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		histories[s] = barsAt(1, 2)
		symbols = append(symbols, s)
	}
	f := NewSeriesFetcher(&stubMarket{histories: histories}, nopMetrics{}, testLogger(t), 8)

	got := f.FetchComparisons(context.Background(), symbols, "1d", "1m")

	require.Len(t, got, len(symbols))
	for _, s := range symbols {
		assert.Contains(t, got, s)
	}
}

func TestFormatTimestamps(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	bars := []models.Bar{
		{Time: time.Date(2025, 3, 10, 9, 30, 0, 0, ny)},
		{Time: time.Date(2025, 3, 10, 9, 31, 0, 0, ny)},
	}

	got := FormatTimestamps(bars)
	assert.Equal(t, []string{"2025-03-10 09:30:00", "2025-03-10 09:31:00"}, got)
}
