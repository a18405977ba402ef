package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	requestsTotal    *prometheus.CounterVec
	fetchDuration    *prometheus.HistogramVec
	fetchErrorsTotal *prometheus.CounterVec
	batchSize        *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		requestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockapi_requests_total",
				Help: "Total number of stock data requests by endpoint",
			},
			[]string{"endpoint"},
		),
		fetchDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockapi_provider_fetch_duration_seconds",
				Help:    "Duration of upstream provider fetches",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"op"},
		),
		fetchErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockapi_provider_fetch_errors_total",
				Help: "Total number of per-symbol provider fetch failures",
			},
			[]string{"op"},
		),
		batchSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "stockapi_request_batch_size",
				Help:    "Number of symbols handled per request",
				Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
			},
			[]string{"endpoint"},
		),
	}
}

func (r *Recorder) RecordRequest(endpoint string) {
	r.requestsTotal.WithLabelValues(endpoint).Inc()
}

func (r *Recorder) RecordFetch(op string, seconds float64) {
	r.fetchDuration.WithLabelValues(op).Observe(seconds)
}

func (r *Recorder) RecordFetchError(op string) {
	r.fetchErrorsTotal.WithLabelValues(op).Inc()
}

func (r *Recorder) RecordBatchSize(endpoint string, size int) {
	r.batchSize.WithLabelValues(endpoint).Observe(float64(size))
}
