package di

import (
	"github.com/Priyanndarshan/stock-website/internal/domain/repository"
	"github.com/Priyanndarshan/stock-website/internal/handler/api"
	"github.com/Priyanndarshan/stock-website/internal/service/ratelimit"
	"github.com/Priyanndarshan/stock-website/internal/service/yahoo"
	"github.com/Priyanndarshan/stock-website/internal/usecase"
	"github.com/Priyanndarshan/stock-website/pkg/config"
	xhttp "github.com/Priyanndarshan/stock-website/pkg/http"
	"github.com/Priyanndarshan/stock-website/pkg/logger"
	"github.com/Priyanndarshan/stock-website/pkg/metrics"
	"github.com/Priyanndarshan/stock-website/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(&logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideRateLimiter creates the outbound request limiter, or nil when
// max_rps is unset.
func ProvideRateLimiter(cfg *config.Config) *ratelimit.Limiter {
	if cfg.Provider.MaxRPS <= 0 {
		return nil
	}
	return ratelimit.New(cfg.Provider.MaxRPS, cfg.Provider.MaxRPS)
}

// ProvideMarketData creates the Yahoo Finance provider client.
func ProvideMarketData(cfg *config.Config, limiter *ratelimit.Limiter) repository.MarketData {
	return yahoo.New(
		cfg.Provider.BaseURL,
		cfg.Provider.UserAgent,
		cfg.Provider.Timeout,
		cfg.Provider.NewsCount,
		limiter,
	)
}

// ProvideSeriesFetcher creates the series fetcher use case.
func ProvideSeriesFetcher(provider repository.MarketData, m repository.Metrics, l *logger.Logger, cfg *config.Config) *usecase.SeriesFetcher {
	return usecase.NewSeriesFetcher(provider, m, l, cfg.Provider.MaxConcurrency)
}

// ProvideInfoFetcher creates the fundamentals fetcher use case.
func ProvideInfoFetcher(provider repository.MarketData, m repository.Metrics, l *logger.Logger, cfg *config.Config) *usecase.InfoFetcher {
	return usecase.NewInfoFetcher(provider, m, l, cfg.Provider.MaxConcurrency)
}

// ProvideAggregator creates the comparative metrics aggregator.
func ProvideAggregator() *usecase.ComparativeAggregator {
	return usecase.NewComparativeAggregator()
}

// ProvideAssembler creates the response assembler.
func ProvideAssembler(
	series *usecase.SeriesFetcher,
	info *usecase.InfoFetcher,
	agg *usecase.ComparativeAggregator,
	provider repository.MarketData,
	m repository.Metrics,
) *usecase.ResponseAssembler {
	return usecase.NewResponseAssembler(series, info, agg, provider, m)
}

// ProvideHandler creates the Echo HTTP handler.
func ProvideHandler(l *logger.Logger, assembler *usecase.ResponseAssembler) xhttp.Handler {
	return api.NewStocksEchoHandler(l, assembler)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, l *logger.Logger, handler xhttp.Handler) *server.App {
	return server.New(cfg, l, handler)
}
