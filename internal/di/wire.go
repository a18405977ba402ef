//go:build wireinject
// +build wireinject

package di

import (
	"github.com/Priyanndarshan/stock-website/pkg/config"
	"github.com/Priyanndarshan/stock-website/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideMetrics,

		// Provider client
		ProvideRateLimiter,
		ProvideMarketData,

		// Use cases
		ProvideSeriesFetcher,
		ProvideInfoFetcher,
		ProvideAggregator,
		ProvideAssembler,

		// Transport
		ProvideHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
