package lifetable

// Config locates the life expectancy reference file
type Config struct {
	Path string `yaml:"path" default:"life.csv"`
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Path == "" {
		return ErrPathRequired
	}

	return nil
}
