package config

// AWSConfig holds the settings used to construct the authenticated SageMaker
// client at process start. Credential acquisition itself is delegated to the
// SDK default chain (static keys below, OIDC web identity, instance
// profile); the orchestration engine only ever sees a ready client.
type AWSConfig struct {
	// Region is the target AWS region.
	Region string `env:"INPUT_AWS_REGION" envDefault:"us-east-1"`

	// AccessKeyID and SecretAccessKey configure static credentials when the
	// workflow passes them explicitly. Prefer OIDC role assumption upstream.
	AccessKeyID     string `env:"INPUT_AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"INPUT_AWS_SECRET_ACCESS_KEY"`
	SessionToken    string `env:"INPUT_AWS_SESSION_TOKEN"`
}

// Sanitize applies guardrails to AWS configuration values.
func (c *AWSConfig) Sanitize() {
	if c.Region == "" {
		c.Region = "us-east-1"
	}
}

// HasStaticCredentials returns true if a static key pair was provided.
func (c *AWSConfig) HasStaticCredentials() bool {
	return c.AccessKeyID != "" && c.SecretAccessKey != ""
}
