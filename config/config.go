package config

import (
	"fmt"

	"github.com/hasbyte1/go-stream-utils/logger"
)

// DefaultMinReadTime is the long-read threshold used when none is configured.
const DefaultMinReadTime = 15

// Config is the configuration of the streamreport command.
type Config struct {
	Log         logger.Config `yaml:"log" mapstructure:"log"`
	Catalog     string        `yaml:"catalog" mapstructure:"catalog"`
	MinReadTime int           `yaml:"min_read_time" mapstructure:"min_read_time"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	c.Log.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Catalog == "" {
		return fmt.Errorf("catalog is required")
	}
	if c.MinReadTime < 0 {
		return fmt.Errorf("min_read_time must not be negative (got: %d)", c.MinReadTime)
	}
	return c.Log.Validate()
}
