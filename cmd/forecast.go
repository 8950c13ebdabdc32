package cmd

import (
	"github.com/ethpandaops/peerage/pkg/engine"
	"github.com/ethpandaops/peerage/pkg/forecast"
	"github.com/ethpandaops/peerage/pkg/report"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// forecastOptions holds the rule and output selection
type forecastOptions struct {
	life  bool
	age75 bool
	age80 bool
	csv   bool
}

func (o *forecastOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.life, "life", false, "Current life membership rules")
	cmd.Flags().BoolVar(&o.age75, "age75", false, "Mandatory retirement at 75")
	cmd.Flags().BoolVar(&o.age80, "age80", false, "Mandatory retirement at 80")
	cmd.Flags().BoolVar(&o.csv, "csv", false, "Output CSV format (e.g. for Excel)")

	cmd.MarkFlagsOneRequired("life", "age75", "age80")
	cmd.MarkFlagsMutuallyExclusive("life", "age75", "age80")
}

// factor resolves the selected rule. Flag groups guarantee exactly one is set.
func (o *forecastOptions) factor() forecast.Factor {
	switch {
	case o.life:
		return forecast.FactorLifetime
	case o.age75:
		return forecast.FactorAge75
	default:
		return forecast.FactorAge80
	}
}

func runForecast(cmd *cobra.Command, opts *forecastOptions) error {
	// Silence usage on error
	cmd.SilenceUsage = true

	// Load configuration
	cfg, err := LoadCLIConfig(cfgFile)
	if err != nil {
		return err
	}
	if validationErr := cfg.Validate(); validationErr != nil {
		return validationErr
	}

	setLogLevel(cmd, cfg.Logging)

	log := logger.WithFields(logrus.Fields{
		"run_id": uuid.New().String(),
		"house":  cfg.Source.House,
	})

	svc, err := engine.NewService(log, cfg)
	if err != nil {
		return err
	}

	return svc.Run(cmd.Context(), cmd.OutOrStdout(), opts.factor(), report.New(opts.csv))
}
