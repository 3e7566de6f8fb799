package metrics

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// RunStats carries the counts of one sync run the caller wants recorded.
// It is a plain value so this package stays below the use case layer.
type RunStats struct {
	Tenants        int
	Accounts       int
	FailedAccounts int
	Events         int
	StartedAt      time.Time
	Duration       time.Duration
}

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Sync metrics
	SyncRuns         *prometheus.CounterVec
	SyncDuration     prometheus.Histogram
	SyncedEvents     prometheus.Counter
	SyncedAccounts   prometheus.Counter
	FailedAccounts   prometheus.Counter
	KnownTenants     prometheus.Gauge
	LastRunTimestamp prometheus.Gauge

	// API metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New creates all metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SyncRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dwh_sync_runs_total",
				Help: "Total number of sync runs by outcome",
			},
			[]string{"status"},
		),
		SyncDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "dwh_sync_duration_seconds",
			Help:    "Duration of sync runs",
			Buckets: prometheus.DefBuckets,
		}),
		SyncedEvents: factory.NewCounter(prometheus.CounterOpts{
			Name: "dwh_synced_events_total",
			Help: "Total number of ledger events applied",
		}),
		SyncedAccounts: factory.NewCounter(prometheus.CounterOpts{
			Name: "dwh_synced_accounts_total",
			Help: "Total number of accounts synced",
		}),
		FailedAccounts: factory.NewCounter(prometheus.CounterOpts{
			Name: "dwh_failed_accounts_total",
			Help: "Total number of accounts skipped over malformed or unreadable records",
		}),
		KnownTenants: factory.NewGauge(prometheus.GaugeOpts{
			Name: "dwh_known_tenants",
			Help: "Number of tenants discovered in primary storage",
		}),
		LastRunTimestamp: factory.NewGauge(prometheus.GaugeOpts{
			Name: "dwh_last_run_timestamp_seconds",
			Help: "Unix time when the last sync run finished",
		}),

		HTTPRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dwh_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dwh_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// RecordRun translates one sync run's stats into metric updates. A nil stats
// still counts the run under its outcome label.
func (m *Metrics) RecordRun(stats *RunStats, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	m.SyncRuns.WithLabelValues(status).Inc()

	if stats == nil {
		return
	}
	m.SyncDuration.Observe(stats.Duration.Seconds())
	m.SyncedEvents.Add(float64(stats.Events))
	m.SyncedAccounts.Add(float64(stats.Accounts))
	m.FailedAccounts.Add(float64(stats.FailedAccounts))
	m.KnownTenants.Set(float64(stats.Tenants))
	m.LastRunTimestamp.Set(float64(stats.StartedAt.Add(stats.Duration).Unix()))
}

// Pusher ships the registry's current state to a Pushgateway after each run.
type Pusher struct {
	pusher *push.Pusher
}

// NewPusher targets the Pushgateway at url. Gatherer g is usually the same
// registry the metrics were registered with.
func NewPusher(url string, g prometheus.Gatherer) *Pusher {
	return &Pusher{
		pusher: push.New(url, "dwh").Gatherer(g),
	}
}

// Push sends the current metric state.
func (p *Pusher) Push(ctx context.Context) error {
	return p.pusher.PushContext(ctx)
}
