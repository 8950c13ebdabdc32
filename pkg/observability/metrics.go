// Package observability records run metrics and pushes them to a Pushgateway
package observability

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

// ErrJobRequired is returned when pushing is enabled without a job name
var ErrJobRequired = errors.New("metrics job is required when pushgateway is set")

// Run stages used as the stage label on RunErrors
const (
	StageLifeTable = "life_table"
	StageFetch     = "fetch"
	StageProject   = "project"
	StageForecast  = "forecast"
	StageRender    = "render"
)

// Metrics holds the collectors for a single run. Each Metrics owns its
// registry so a push only carries this run's series.
type Metrics struct {
	registry *prometheus.Registry

	// MembersLoaded counts fetched members by party and membership type
	MembersLoaded *prometheus.GaugeVec
	// FetchDuration measures the roster request in seconds
	FetchDuration prometheus.Histogram
	// LifeTableAges is the number of ages in the loaded life table
	LifeTableAges prometheus.Gauge
	// ForecastRows counts rows produced, by factor
	ForecastRows *prometheus.GaugeVec
	// ForecastSeated is the projected total for the final horizon year
	ForecastSeated *prometheus.GaugeVec
	// RunErrors counts failed runs by stage
	RunErrors *prometheus.CounterVec
	// LastSuccess is the unix time of the last successful run
	LastSuccess prometheus.Gauge
}

// NewMetrics creates collectors registered on a fresh registry
func NewMetrics(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		MembersLoaded: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "members_loaded",
				Help:      "Number of members fetched from the roster source",
			},
			[]string{"party", "member_from"},
		),
		FetchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "fetch_duration_seconds",
				Help:      "Roster fetch duration in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10), // 0.1s to ~100s
			},
		),
		LifeTableAges: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "life_table_ages",
				Help:      "Number of ages in the loaded life table",
			},
		),
		ForecastRows: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "forecast_rows",
				Help:      "Number of yearly rows produced",
			},
			[]string{"factor"},
		),
		ForecastSeated: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "forecast_final_year_seated",
				Help:      "Projected seated members in the final year of the horizon",
			},
			[]string{"factor"},
		),
		RunErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "run_errors_total",
				Help:      "Total number of failed runs",
			},
			[]string{"stage"}, // stage: life_table, fetch, project, forecast, render
		),
		LastSuccess: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_success_timestamp_seconds",
				Help:      "Unix time of the last successful run",
			},
		),
	}
}

// Registry returns the registry backing the collectors
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordMember records one fetched member
func (m *Metrics) RecordMember(party, memberFrom string) {
	m.MembersLoaded.WithLabelValues(party, memberFrom).Inc()
}

// RecordFetch records the roster fetch duration
func (m *Metrics) RecordFetch(seconds float64) {
	m.FetchDuration.Observe(seconds)
}

// RecordForecast records the produced rows for factor
func (m *Metrics) RecordForecast(factor string, rows, finalSeated int) {
	m.ForecastRows.WithLabelValues(factor).Set(float64(rows))
	m.ForecastSeated.WithLabelValues(factor).Set(float64(finalSeated))
}

// RecordError records a failed run
func (m *Metrics) RecordError(stage string) {
	m.RunErrors.WithLabelValues(stage).Inc()
}

// RecordSuccess marks the run as successful
func (m *Metrics) RecordSuccess() {
	m.LastSuccess.SetToCurrentTime()
}

// Push sends the collected metrics to the configured Pushgateway, replacing
// any metrics previously pushed for the same job and grouping.
func (m *Metrics) Push(ctx context.Context, cfg *Config, grouping map[string]string) error {
	if !cfg.Enabled() {
		return nil
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	pusher := push.New(cfg.Pushgateway, cfg.Job).Gatherer(m.registry)
	for name, value := range grouping {
		pusher = pusher.Grouping(name, value)
	}

	if err := pusher.PushContext(ctx); err != nil {
		return fmt.Errorf("failed to push metrics: %w", err)
	}

	return nil
}
