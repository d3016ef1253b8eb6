package metrics

import (
	"context"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"tuberank/internal/db"
)

var requestsDesc = prometheus.NewDesc(
	"tuberank_requests_total",
	"Total scoring requests by endpoint and outcome",
	[]string{"endpoint", "outcome"},
	nil,
)

// UsageCollector is a custom Prometheus collector that reads request
// counters from the database on each scrape, so counts survive restarts
// and aggregate across replicas.
type UsageCollector struct {
	db *db.DB
}

// Describe sends the metric descriptor to the channel.
func (c *UsageCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- requestsDesc
}

// Collect queries the database for all usage counters and emits them.
func (c *UsageCollector) Collect(ch chan<- prometheus.Metric) {
	counts, err := c.db.GetAllUsageCounts(context.Background())
	if err != nil {
		slog.Error("failed to collect usage metrics", "error", err)
		return
	}
	for _, uc := range counts {
		ch <- prometheus.MustNewConstMetric(
			requestsDesc,
			prometheus.CounterValue,
			float64(uc.Count),
			uc.Endpoint,
			uc.Outcome,
		)
	}
}

// Recorder provides async usage recording.
type Recorder struct {
	db *db.DB
}

var (
	recorder     *Recorder
	recorderOnce sync.Once
)

// Init registers the custom collector and initializes the recorder.
// Must be called once at startup.
func Init(database *db.DB) {
	recorderOnce.Do(func() {
		recorder = &Recorder{db: database}
		prometheus.MustRegister(&UsageCollector{db: database})
	})
}

// RecordUsage asynchronously records a request outcome. A no-op before
// Init, so handlers stay testable without a database.
func RecordUsage(endpoint, outcome string) {
	if recorder == nil {
		return
	}
	go func() {
		if err := recorder.db.IncrementUsage(context.Background(), endpoint, outcome); err != nil {
			slog.Error("failed to record usage", "endpoint", endpoint, "outcome", outcome, "error", err)
		}
	}()
}
