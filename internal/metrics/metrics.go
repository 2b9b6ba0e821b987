package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Outcome string

const (
	Success Outcome = "success"
	Error   Outcome = "error"
)

func (o Outcome) String() string {
	return string(o)
}

func outcomeOf(err error) Outcome {
	if err != nil {
		return Error
	}
	return Success
}

var defaultBucketsSeconds = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

var (
	rpcLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "chain_rpc_duration_seconds",
		Help:    "Latency of contract reads against the chain node",
		Buckets: defaultBucketsSeconds,
	}, []string{"method", "outcome"})

	feePollDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fee_poll_duration_seconds",
		Help:    "Duration of fee snapshot refreshes",
		Buckets: defaultBucketsSeconds,
	}, []string{"source", "outcome"})

	feeSnapshotTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fee_snapshot_timestamp_seconds",
		Help: "Unix time of the latest successful fee snapshot",
	})

	aggregationFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "lock_aggregation_failures_total",
		Help: "Position aggregations that were replaced with a zero position",
	}, []string{"locker"})
)

func ObserveRPC(method string, startedAt time.Time, err error) {
	rpcLatency.WithLabelValues(method, outcomeOf(err).String()).Observe(time.Since(startedAt).Seconds())
}

func ObserveFeePoll(source string, startedAt time.Time, err error) {
	feePollDuration.WithLabelValues(source, outcomeOf(err).String()).Observe(time.Since(startedAt).Seconds())
	if err == nil {
		feeSnapshotTimestamp.Set(float64(time.Now().Unix()))
	}
}

func IncAggregationFailure(locker string) {
	aggregationFailures.WithLabelValues(locker).Inc()
}
