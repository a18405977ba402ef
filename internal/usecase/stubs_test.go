package usecase

import (
	"context"
	"testing"

	"github.com/Priyanndarshan/stock-website/internal/domain/models"
	xlogger "github.com/Priyanndarshan/stock-website/pkg/logger"
)

// stubMarket is a canned MarketData provider for tests. Missing symbols in
// the error maps succeed with whatever the data maps hold.
type stubMarket struct {
	histories map[string][]models.Bar
	histErrs  map[string]error
	infos     map[string]models.CompanyInfo
	infoErrs  map[string]error
	news      []models.NewsItem
	newsErr   error
}

func (s *stubMarket) History(_ context.Context, symbol, _, _ string) ([]models.Bar, error) {
	if err, ok := s.histErrs[symbol]; ok {
		return nil, err
	}
	return s.histories[symbol], nil
}

func (s *stubMarket) Info(_ context.Context, symbol string) (models.CompanyInfo, error) {
	if err, ok := s.infoErrs[symbol]; ok {
		return models.CompanyInfo{}, err
	}
	return s.infos[symbol], nil
}

func (s *stubMarket) News(_ context.Context, _ string) ([]models.NewsItem, error) {
	return s.news, s.newsErr
}

type nopMetrics struct{}

func (nopMetrics) RecordRequest(string)        {}
func (nopMetrics) RecordFetch(string, float64) {}
func (nopMetrics) RecordFetchError(string)     {}
func (nopMetrics) RecordBatchSize(string, int) {}

func testLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "console", Output: "stderr"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}
