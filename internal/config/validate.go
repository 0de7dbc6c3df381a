package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
	}
	if c.Database.StatementTimeout < 0 {
		return fmt.Errorf("database.statement_timeout must not be negative (got %s)", c.Database.StatementTimeout)
	}
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Delay.validate(); err != nil {
		return fmt.Errorf("delay: %w", err)
	}
	if err := c.Reschedule.validate(); err != nil {
		return fmt.Errorf("reschedule: %w", err)
	}
	if err := c.Scheduler.validate(); err != nil {
		return fmt.Errorf("scheduler: %w", err)
	}
	return nil
}

func (l LogConfig) validate() error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return fmt.Errorf("level %q: %w", l.Level, err)
	}
	switch strings.ToLower(l.Format) {
	case "json", "text":
		return nil
	default:
		return fmt.Errorf("format must be json or text (got %q)", l.Format)
	}
}

func (d DelayConfig) validate() error {
	if d.LowThreshold <= 0 || d.HighThreshold > 1 {
		return fmt.Errorf("thresholds must be within (0, 1] (got %v..%v)", d.LowThreshold, d.HighThreshold)
	}
	if d.LowThreshold >= d.MediumThreshold || d.MediumThreshold >= d.HighThreshold {
		return fmt.Errorf("thresholds must be ascending (got %v, %v, %v)", d.LowThreshold, d.MediumThreshold, d.HighThreshold)
	}
	return nil
}

func (r RescheduleConfig) validate() error {
	if r.MaxConcurrentJobs < 1 {
		return fmt.Errorf("max_concurrent_jobs must be >= 1 (got %d)", r.MaxConcurrentJobs)
	}
	if r.JobTimeout <= 0 {
		return fmt.Errorf("job_timeout must be > 0 (got %s)", r.JobTimeout)
	}
	if r.SubmitsPerMinute < 1 {
		return fmt.Errorf("submits_per_minute must be >= 1 (got %d)", r.SubmitsPerMinute)
	}
	if r.StaleJobAfter < r.JobTimeout {
		return fmt.Errorf("stale_job_after (%s) must not be shorter than job_timeout (%s)", r.StaleJobAfter, r.JobTimeout)
	}
	return nil
}

func (s SchedulerConfig) validate() error {
	if s.ReviewMinutesPercent < 1 || s.ReviewMinutesPercent > 100 {
		return fmt.Errorf("review_minutes_percent must be in 1..100 (got %d)", s.ReviewMinutesPercent)
	}
	if s.MinReviewMinutes < 0 {
		return fmt.Errorf("min_review_minutes must be >= 0 (got %d)", s.MinReviewMinutes)
	}
	return nil
}
