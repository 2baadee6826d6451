package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/AayushY02/Parking-MapAI/infra/runlog"
)

// LoggingConfig defines the log level and the run-log store.
type LoggingConfig struct {
	// Level is a zerolog level name such as "debug" or "info".
	Level string `json:"level"`
	// RunLog selects where sweep results are persisted.
	RunLog runlog.Config `json:"runlog"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	c.RunLog.SetDefaults()
}

// Validate checks the level and the run-log backend.
func (c LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if err := c.RunLog.Validate(); err != nil {
		return fmt.Errorf("logging.runlog: %w", err)
	}
	return nil
}
