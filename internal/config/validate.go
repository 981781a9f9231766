package config

import (
	"fmt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database: min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}
	if c.Database.TxRetries < 0 {
		return fmt.Errorf("database: tx_retries must be >= 0 (got %d)", c.Database.TxRetries)
	}
	if c.Database.StatementTimeout < 0 {
		return fmt.Errorf("database: statement_timeout must be >= 0 (got %v)", c.Database.StatementTimeout)
	}

	if c.RateLimit.RequestsPerMinute < 1 {
		return fmt.Errorf("rate_limit: requests_per_minute must be >= 1 (got %d)", c.RateLimit.RequestsPerMinute)
	}
	if c.RateLimit.CleanupInterval <= 0 {
		return fmt.Errorf("rate_limit: cleanup_interval must be > 0 (got %v)", c.RateLimit.CleanupInterval)
	}

	if err := c.Lease.validate(); err != nil {
		return fmt.Errorf("lease: %w", err)
	}

	if c.Assignment.MaxAttempts < 1 {
		return fmt.Errorf("assignment: max_attempts must be >= 1 (got %d)", c.Assignment.MaxAttempts)
	}

	if err := c.Consensus.validate(); err != nil {
		return fmt.Errorf("consensus: %w", err)
	}

	if err := c.Moderation.validate(); err != nil {
		return fmt.Errorf("moderation: %w", err)
	}

	return nil
}

func (l *LeaseConfig) validate() error {
	if l.Duration <= 0 {
		return fmt.Errorf("duration must be > 0 (got %v)", l.Duration)
	}
	if l.RefreshBelow <= 0 || l.RefreshBelow >= l.Duration {
		return fmt.Errorf("refresh_below must be in (0, duration) (got %v)", l.RefreshBelow)
	}
	return nil
}

func (c *ConsensusConfig) validate() error {
	if c.Quorum < 1 {
		return fmt.Errorf("quorum must be >= 1 (got %d)", c.Quorum)
	}
	if c.AgreementThreshold < 1 || c.AgreementThreshold > c.Quorum {
		return fmt.Errorf("agreement_threshold must be in [1, quorum] (got %d)", c.AgreementThreshold)
	}
	return nil
}

func (m *ModerationConfig) validate() error {
	if m.MinValidations < 1 {
		return fmt.Errorf("min_validations must be >= 1 (got %d)", m.MinValidations)
	}
	if m.GraceValidations < 0 {
		return fmt.Errorf("grace_validations must be >= 0 (got %d)", m.GraceValidations)
	}
	if !(m.BanBelow <= m.RestrictBelow && m.RestrictBelow <= m.WarnBelow) {
		return fmt.Errorf("thresholds must satisfy ban_below <= restrict_below <= warn_below (got %d, %d, %d)",
			m.BanBelow, m.RestrictBelow, m.WarnBelow)
	}
	if m.WarnBelow > 100 || m.BanBelow < 0 {
		return fmt.Errorf("thresholds must lie within [0, 100]")
	}
	if m.DedupWindow < 0 {
		return fmt.Errorf("dedup_window must be >= 0 (got %v)", m.DedupWindow)
	}
	return nil
}
