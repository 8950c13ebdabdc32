package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/ethpandaops/peerage/pkg/forecast"
	"github.com/ethpandaops/peerage/pkg/lifetable"
	"github.com/ethpandaops/peerage/pkg/observability"
	"github.com/ethpandaops/peerage/pkg/projection"
	"github.com/ethpandaops/peerage/pkg/report"
	"github.com/ethpandaops/peerage/pkg/roster"
	"github.com/sirupsen/logrus"
)

// metricsNamespace prefixes every pushed metric
const metricsNamespace = "peerage"

// LifeTable is a loaded life expectancy table
type LifeTable interface {
	projection.Expectancy
	Len() int
}

// LifeTableLoader loads the table at path
type LifeTableLoader func(path string) (LifeTable, error)

// Option configures optional Service dependencies
type Option func(*Service)

// WithSource replaces the HTTP roster source
func WithSource(source roster.Source) Option {
	return func(s *Service) {
		s.source = source
	}
}

// WithLifeTableLoader replaces the file based life table loader
func WithLifeTableLoader(loader LifeTableLoader) Option {
	return func(s *Service) {
		s.loadLifeTable = loader
	}
}

// WithClock sets the source of the run date
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithMetrics sets the metrics the run records into
func WithMetrics(metrics *observability.Metrics) Option {
	return func(s *Service) {
		s.metrics = metrics
	}
}

// Service runs forecasts
type Service struct {
	log    logrus.FieldLogger
	config *Config

	source        roster.Source
	loadLifeTable LifeTableLoader
	metrics       *observability.Metrics
	now           func() time.Time
}

// NewService creates a forecast service. Unless overridden, members are
// fetched over HTTP and the life table is read from disk.
func NewService(log logrus.FieldLogger, cfg *Config, opts ...Option) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	s := &Service{
		log:           log.WithField("component", "engine"),
		config:        cfg,
		loadLifeTable: loadLifeTableFile,
		now:           time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.source == nil {
		source, err := roster.NewHTTPSource(log, &cfg.Source)
		if err != nil {
			return nil, fmt.Errorf("failed to create roster source: %w", err)
		}

		s.source = source
	}

	if s.metrics == nil {
		s.metrics = observability.NewMetrics(metricsNamespace)
	}

	return s, nil
}

func loadLifeTableFile(path string) (LifeTable, error) {
	table, err := lifetable.Load(path)
	if err != nil {
		return nil, err
	}

	return table, nil
}

// Metrics returns the metrics recorded by the service
func (s *Service) Metrics() *observability.Metrics {
	return s.metrics
}

// Run forecasts membership under factor and renders the rows to w. Nothing
// is written to w unless every row was computed.
func (s *Service) Run(ctx context.Context, w io.Writer, factor forecast.Factor, renderer report.Renderer) error {
	defer s.pushMetrics(ctx)

	today := s.now()
	log := s.log.WithFields(logrus.Fields{
		"factor":   factor.String(),
		"run_date": today.Format(time.DateOnly),
	})

	var table projection.Expectancy

	if factor.NeedsLifeTable() {
		lt, err := s.loadLifeTable(s.config.LifeTable.Path)
		if err != nil {
			s.metrics.RecordError(observability.StageLifeTable)

			return fmt.Errorf("failed to load life table: %w", err)
		}

		s.metrics.LifeTableAges.Set(float64(lt.Len()))
		log.WithFields(logrus.Fields{
			"path": s.config.LifeTable.Path,
			"ages": lt.Len(),
		}).Info("Loaded life table")

		table = lt
	}

	start := time.Now()

	members, err := s.source.Members(ctx)
	if err != nil {
		s.metrics.RecordError(observability.StageFetch)

		return fmt.Errorf("failed to fetch members: %w", err)
	}

	s.metrics.RecordFetch(time.Since(start).Seconds())

	for i := range members {
		s.metrics.RecordMember(members[i].Party, members[i].MemberFrom)
	}

	projected, err := projection.NewCalculator(today, table).ProjectAll(members)
	if err != nil {
		s.metrics.RecordError(observability.StageProject)

		return fmt.Errorf("failed to project members: %w", err)
	}

	for i := range projected {
		p := &projected[i]
		log.WithFields(logrus.Fields{
			"name":     p.Name,
			"party":    p.Party,
			"age":      p.Age,
			"age75":    p.Age75,
			"age80":    p.Age80,
			"lifetime": p.Lifetime,
		}).Trace("Projected member")
	}

	rows, err := forecast.Run(today.Year(), projected, factor)
	if err != nil {
		s.metrics.RecordError(observability.StageForecast)

		return fmt.Errorf("failed to forecast membership: %w", err)
	}

	s.metrics.RecordForecast(factor.String(), len(rows), rows[len(rows)-1].Total)

	if err := renderer.Render(w, forecast.Header(), rows); err != nil {
		s.metrics.RecordError(observability.StageRender)

		return fmt.Errorf("failed to render forecast: %w", err)
	}

	s.metrics.RecordSuccess()

	log.WithFields(logrus.Fields{
		"members": len(projected),
		"rows":    len(rows),
	}).Info("Forecast complete")

	return nil
}

func (s *Service) pushMetrics(ctx context.Context) {
	if !s.config.Metrics.Enabled() {
		return
	}

	grouping := map[string]string{"house": s.config.Source.House}
	if err := s.metrics.Push(ctx, &s.config.Metrics, grouping); err != nil {
		s.log.WithError(err).Warn("Failed to push metrics")
	}
}
