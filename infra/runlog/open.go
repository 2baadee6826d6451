package runlog

import (
	"fmt"

	"github.com/AayushY02/Parking-MapAI/core/runlog"
)

// Backend names accepted by Open.
const (
	BackendNone     = "none"
	BackendJSONL    = "jsonl"
	BackendRotating = "jsonl_rotating"
	BackendSQLite   = "sqlite"
)

// Config selects and configures the run-log backend.
type Config struct {
	Backend    string `json:"backend"`
	Path       string `json:"path"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

// SetDefaults fills unset fields.
func (c *Config) SetDefaults() {
	if c.Backend == "" {
		c.Backend = BackendJSONL
	}
	if c.Path == "" {
		switch c.Backend {
		case BackendSQLite:
			c.Path = "runs.db"
		default:
			c.Path = "runs.jsonl"
		}
	}
	if c.MaxSizeMB <= 0 {
		c.MaxSizeMB = 10
	}
	if c.MaxBackups <= 0 {
		c.MaxBackups = 5
	}
	if c.MaxAgeDays <= 0 {
		c.MaxAgeDays = 30
	}
}

// Validate checks the backend name.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendNone, BackendJSONL, BackendRotating, BackendSQLite:
		return nil
	default:
		return fmt.Errorf("runlog: unknown backend %q", c.Backend)
	}
}

// Open returns the configured store, or nil for the "none" backend.
func Open(cfg Config) (runlog.Store, error) {
	switch cfg.Backend {
	case BackendNone:
		return nil, nil
	case BackendJSONL:
		return wrap(NewJSONLStore(cfg.Path))
	case BackendRotating:
		return wrap(NewRotatingJSONLStore(cfg.Path, cfg.MaxSizeMB, cfg.MaxBackups, cfg.MaxAgeDays))
	case BackendSQLite:
		return wrap(NewSQLiteStore(cfg.Path))
	default:
		return nil, fmt.Errorf("runlog: unknown backend %q", cfg.Backend)
	}
}

func wrap[S runlog.Store](s S, err error) (runlog.Store, error) {
	if err != nil {
		return nil, fmt.Errorf("open run log: %w", err)
	}
	return s, nil
}
