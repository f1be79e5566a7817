package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Database.MaxConns <= 0 {
		return fmt.Errorf("database.max_conns must be > 0 (got %d)", c.Database.MaxConns)
	}
	if c.Database.MinConns < 0 {
		return fmt.Errorf("database.min_conns must be >= 0 (got %d)", c.Database.MinConns)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed database.max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if c.Sync.LoadTimeout <= 0 {
		return fmt.Errorf("sync.load_timeout must be > 0 (got %v)", c.Sync.LoadTimeout)
	}
	if c.Sync.MaxSavedPerUser < 0 {
		return fmt.Errorf("sync.max_saved_per_user must be >= 0 (got %d)", c.Sync.MaxSavedPerUser)
	}

	return nil
}
