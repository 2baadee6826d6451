package metrics

import (
	"fmt"

	"github.com/AayushY02/Parking-MapAI/core/factory"
)

// Config defines settings for metrics sinks.
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks" yaml:"sinks"`
	// PrometheusAddr is where /metrics is served; empty disables the server.
	PrometheusAddr string `json:"prometheus_addr" yaml:"prometheus_addr"`
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	for i := range c.Sinks {
		if c.Sinks[i].Conf == nil {
			c.Sinks[i].Conf = map[string]any{}
		}
	}
}

// Validate checks that every sink names a type.
func (c Config) Validate() error {
	for i, s := range c.Sinks {
		if s.Type == "" {
			return fmt.Errorf("metrics.sinks[%d]: type is required", i)
		}
	}
	return nil
}
