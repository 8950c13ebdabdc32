// Package engine runs a single membership forecast from fetch to output
package engine

import (
	"errors"
	"fmt"

	"github.com/ethpandaops/peerage/pkg/lifetable"
	"github.com/ethpandaops/peerage/pkg/observability"
	"github.com/ethpandaops/peerage/pkg/roster"
	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidLogLevel is returned when the logging level is not a logrus level
	ErrInvalidLogLevel = errors.New("invalid logging level")
)

// Config represents the complete forecast configuration
type Config struct {
	// Logging level, used unless --log-level is given
	Logging string `yaml:"logging" default:"warn" validate:"oneof=panic fatal error warn info debug trace"`

	// Member data source
	Source roster.Config `yaml:"source"`

	// Life expectancy reference table, only read for lifetime forecasts
	LifeTable lifetable.Config `yaml:"lifeTable"`

	// Metrics push configuration
	Metrics observability.Config `yaml:"metrics"`
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Logging); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging)
	}

	if err := c.Source.Validate(); err != nil {
		return fmt.Errorf("invalid source configuration: %w", err)
	}

	if err := c.LifeTable.Validate(); err != nil {
		return fmt.Errorf("invalid life table configuration: %w", err)
	}

	if err := c.Metrics.Validate(); err != nil {
		return fmt.Errorf("invalid metrics configuration: %w", err)
	}

	return nil
}
