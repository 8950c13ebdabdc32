// Package cmd contains the CLI commands for peerage
package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Global vars needed for cobra CLI
var (
	cfgFile string
	logger  *logrus.Logger
)

// rootCmd represents the base command
//
//nolint:gochecknoglobals // Cobra commands are typically global
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &forecastOptions{}

	cmd := &cobra.Command{
		Use:   "peerage (--life | --age75 | --age80) [--csv]",
		Short: "Predict House of Lords membership under various retirement rules",
		Long: `Peerage fetches the current membership of the House of Lords, projects when
each life peer would leave under the selected rule and prints the number of
members expected to sit in each of the next 45 years, broken down by party.

Rules:
  --life    current rules, life peers sit for their expected lifetime
  --age75   mandatory retirement at 75
  --age80   mandatory retirement at 80`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runForecast(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	cmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error, fatal, panic)")

	opts.addFlags(cmd)

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Initialize logger
	logger = logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

// setLogLevel applies --log-level when given and the configured level otherwise
func setLogLevel(cmd *cobra.Command, configured string) {
	logLevel := configured

	if cmd.Flags().Changed("log-level") {
		flagLevel, err := cmd.Flags().GetString("log-level")
		if err == nil {
			logLevel = flagLevel
		}
	}

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logger.WithError(err).Warn("Invalid log level, defaulting to info")
		level = logrus.InfoLevel
	}

	logger.SetLevel(level)
}
