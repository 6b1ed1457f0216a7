package config

import "time"

const (
	// DefaultMaxWait bounds how long a run waits for remote completion.
	DefaultMaxWait = 24 * time.Hour

	// DefaultRetryBudget is the number of consecutive transient status-check
	// failures tolerated before the run fails with a polling error.
	DefaultRetryBudget = 5

	// DefaultRetryDelay is the initial backoff between transient retries.
	DefaultRetryDelay = 2 * time.Second
)

// PollerConfig tunes the status poller. The poll interval itself is a step
// input (check-interval) because workflows set it per job; these knobs are
// runner-level and rarely change.
type PollerConfig struct {
	// MaxWait is the wall-clock budget for waiting on remote completion.
	MaxWait time.Duration `env:"POLL_MAX_WAIT" envDefault:"24h"`

	// RetryBudget is the number of consecutive transient status-check
	// failures tolerated before giving up.
	RetryBudget int `env:"POLL_RETRY_BUDGET" envDefault:"5"`

	// RetryDelay is the initial backoff between transient retries.
	RetryDelay time.Duration `env:"POLL_RETRY_DELAY" envDefault:"2s"`
}

// Sanitize applies guardrails to poller configuration values.
func (c *PollerConfig) Sanitize() {
	if c.MaxWait <= 0 {
		c.MaxWait = DefaultMaxWait
	}
	if c.RetryBudget <= 0 {
		c.RetryBudget = DefaultRetryBudget
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = DefaultRetryDelay
	}
}
