package config

import (
	"fmt"

	"github.com/AayushY02/Parking-MapAI/core/scenario"
	"github.com/AayushY02/Parking-MapAI/core/timeline"
)

// RunConfig holds the defaults used by the service and CLI.
type RunConfig struct {
	// TimeIndex is the default slot, 0-based.
	TimeIndex int `json:"time_index"`
	// Scenario is a scenario id, or "baseline".
	Scenario string `json:"scenario"`
	// Sweep computes every slot and scenario at startup.
	Sweep *bool `json:"sweep"`
}

// SetDefaults enables the startup sweep when unset.
func (c *RunConfig) SetDefaults() {
	if c.Sweep == nil {
		on := true
		c.Sweep = &on
	}
}

// SweepEnabled reports whether the startup sweep runs.
func (c RunConfig) SweepEnabled() bool { return c.Sweep == nil || *c.Sweep }

// Validate checks the slot range and the scenario name.
func (c RunConfig) Validate() error {
	if c.TimeIndex < 0 || c.TimeIndex >= timeline.SlotCount {
		return fmt.Errorf("run.time_index %d out of range [0,%d)", c.TimeIndex, timeline.SlotCount)
	}
	if _, err := scenario.Parse(c.Scenario); err != nil {
		return fmt.Errorf("run.scenario: %w", err)
	}
	return nil
}
