package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-blockstats/internal/blockstats/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "api_client",
		Name:      "requests_total",
		Help:      "Count of block explorer API requests.",
	}, []string{"operation", "host", "status"})
	apiRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "api_client",
		Name:      "request_duration_seconds",
		Help:      "Duration of block explorer API requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "host", "status"})
)

// APIClient tracks metrics for HTTP calls to the block explorer API.
type APIClient struct {
	host string
}

// NewAPIClient constructs a metrics collector for API calls against host.
func NewAPIClient(host string) *APIClient {
	if host == "" {
		host = "unknown"
	}
	return &APIClient{host: host}
}

// Observe records a single API call outcome and duration.
// Non-200 responses are labelled with their status code.
func (m APIClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	var statusErr *model.StatusError
	switch {
	case errors.As(err, &statusErr):
		status = strconv.Itoa(statusErr.Code)
	case err != nil:
		status = "error"
	}

	apiRequestsTotal.WithLabelValues(operation, m.host, status).Inc()
	apiRequestDuration.WithLabelValues(operation, m.host, status).Observe(time.Since(started).Seconds())
}
