package config

// GitHubConfig holds the runner plumbing the action publishes through.
// All of these are provided by the GitHub Actions runner itself.
type GitHubConfig struct {
	// OutputPath is the file step outputs are appended to. When empty
	// (older runners, local runs), outputs fall back to the legacy
	// set-output workflow command on stdout.
	OutputPath string `env:"GITHUB_OUTPUT"`

	// SummaryPath is the file the step summary is appended to, if set.
	SummaryPath string `env:"GITHUB_STEP_SUMMARY"`

	// Debug mirrors the runner's debug toggle and raises the log level.
	Debug bool `env:"ACTIONS_RUNNER_DEBUG" envDefault:"false"`
}
