package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.RateLimit.Enabled && c.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate_limit.per_minute must be > 0 (got %d)", c.RateLimit.PerMinute)
	}

	if c.Redis.Enabled && c.Redis.Addr == "" {
		return fmt.Errorf("redis.addr is required when redis.enabled is true")
	}

	if err := c.Workflow.validate(); err != nil {
		return fmt.Errorf("workflow: %w", err)
	}

	return nil
}

func (w *WorkflowConfig) validate() error {
	if w.SeniorMentorCapacity <= 0 {
		return fmt.Errorf("senior_mentor_capacity must be > 0 (got %d)", w.SeniorMentorCapacity)
	}
	if w.RegularMentorCapacity <= 0 {
		return fmt.Errorf("regular_mentor_capacity must be > 0 (got %d)", w.RegularMentorCapacity)
	}
	if w.MaxBatchSize <= 0 {
		return fmt.Errorf("max_batch_size must be > 0 (got %d)", w.MaxBatchSize)
	}
	if w.NotifyTimeout <= 0 {
		return fmt.Errorf("notify_timeout must be > 0 (got %v)", w.NotifyTimeout)
	}
	return nil
}
