package roster

import "time"

// Config holds the member data source configuration
type Config struct {
	// URL is the endpoint template, rendered with Sprig functions. The
	// default queries basic details from the members data platform.
	URL string `yaml:"url" default:"http://data.parliament.uk/membersdataplatform/services/mnis/members/query/House={{ .House }}/BasicDetails/"`
	// House is exposed to the URL template as {{ .House }}
	House string `yaml:"house" default:"Lords"`
	// Timeout bounds the request. Zero means no timeout.
	Timeout time.Duration `yaml:"timeout"`
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.URL == "" {
		return ErrURLRequired
	}

	if c.House == "" {
		return ErrHouseRequired
	}

	return nil
}
