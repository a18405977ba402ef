package repository

import (
	"context"

	"github.com/Priyanndarshan/stock-website/internal/domain/models"
)

// MarketData is the upstream provider capability. Each call is independent
// and may fail per symbol; period and interval are provider-defined strings
// passed through unchanged.
type MarketData interface {
	History(ctx context.Context, symbol, period, interval string) ([]models.Bar, error)
	Info(ctx context.Context, symbol string) (models.CompanyInfo, error)
	News(ctx context.Context, symbol string) ([]models.NewsItem, error)
}

type Metrics interface {
	RecordRequest(endpoint string)
	RecordFetch(op string, seconds float64)
	RecordFetchError(op string)
	RecordBatchSize(endpoint string, size int)
}
