package observability

// Config holds metrics configuration
type Config struct {
	// Pushgateway is the Pushgateway URL metrics are pushed to at the end of
	// a run. Empty disables pushing.
	Pushgateway string `yaml:"pushgateway"`
	// Job is the Pushgateway job label
	Job string `yaml:"job" default:"peerage"`
}

// Enabled reports whether metrics should be pushed
func (c *Config) Enabled() bool {
	return c.Pushgateway != ""
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Enabled() && c.Job == "" {
		return ErrJobRequired
	}

	return nil
}
