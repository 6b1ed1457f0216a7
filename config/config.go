// Package config defines the process configuration for the SageMaker
// training action.
package config

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded once at process start from environment variables
// using the github.com/caarlos0/env library; the orchestration engine itself
// never reads the process environment. See individual domain config files
// for the available variables:
//   - inputs.go: raw INPUT_* step inputs (strings, validated downstream)
//   - aws.go: AWS client configuration
//   - poller.go: status poller tuning
//   - github.go: GitHub Actions runner plumbing
type AppConfig struct {
	// Raw step inputs as provided by the pipeline runner.
	Inputs Inputs

	// AWS client configuration.
	AWS AWSConfig

	// Status poller tuning knobs.
	Poller PollerConfig

	// GitHub Actions runner plumbing (output file, summary file, debug).
	GitHub GitHubConfig
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment
// variables.
func (c *AppConfig) Sanitize() {
	c.AWS.Sanitize()
	c.Poller.Sanitize()
}
