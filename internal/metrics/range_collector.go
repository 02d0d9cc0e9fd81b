package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	collectorBlockTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "range_collector",
		Name:      "blocks_total",
		Help:      "Count of block fetch attempts by outcome.",
	}, []string{"host", "status"})

	collectorBlockDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "range_collector",
		Name:      "block_duration_seconds",
		Help:      "Duration of fetching a single block.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"host", "status"})

	collectorRangeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "range_collector",
		Name:      "ranges_total",
		Help:      "Count of collected block ranges.",
	}, []string{"host", "status"})

	collectorRangeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "range_collector",
		Name:      "range_duration_seconds",
		Help:      "Duration of collecting a block range.",
		Buckets:   prometheus.ExponentialBuckets(0.1, 2, 12),
	}, []string{"host", "status"})

	collectorRangeRequested = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "range_collector",
		Name:      "range_requested_blocks",
		Help:      "Number of blocks requested per range.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"host"})

	collectorRangeCollected = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "range_collector",
		Name:      "range_collected_blocks",
		Help:      "Number of blocks collected per range.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"host"})
)

type RangeCollector struct {
	host string
}

func NewRangeCollector(host string) *RangeCollector {
	if host == "" {
		host = "unknown"
	}
	return &RangeCollector{host: host}
}

// ObserveBlock records one block fetch; status is success, skipped or error.
func (m RangeCollector) ObserveBlock(status string, started time.Time) {
	collectorBlockTotal.WithLabelValues(m.host, status).Inc()
	collectorBlockDuration.WithLabelValues(m.host, status).Observe(time.Since(started).Seconds())
}

func (m RangeCollector) ObserveRange(requested, collected int, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	collectorRangeTotal.WithLabelValues(m.host, status).Inc()
	collectorRangeDuration.WithLabelValues(m.host, status).Observe(time.Since(started).Seconds())
	collectorRangeRequested.WithLabelValues(m.host).Observe(float64(requested))
	collectorRangeCollected.WithLabelValues(m.host).Observe(float64(collected))
}
