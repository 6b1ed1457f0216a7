package config

// Inputs carries the raw step inputs exactly as the pipeline runner provides
// them: every value is a string. GitHub Actions exposes each declared input
// as an INPUT_<NAME> environment variable with hyphens mapped to
// underscores. Semantics (required fields, formats, JSON shapes, numeric
// ranges) are enforced by internal/validate, which turns an Inputs value
// into a model.JobSpec.
type Inputs struct {
	// JobName is the training job name, unique per account and region.
	JobName string `env:"INPUT_JOB_NAME"`

	// AlgorithmSpecification is the training container image reference.
	AlgorithmSpecification string `env:"INPUT_ALGORITHM_SPECIFICATION"`

	// RoleARN is the execution role the training job assumes.
	RoleARN string `env:"INPUT_ROLE_ARN"`

	// InstanceType is the compute instance type (e.g. ml.m5.large).
	InstanceType string `env:"INPUT_INSTANCE_TYPE"`

	// InstanceCount is the number of training instances.
	InstanceCount string `env:"INPUT_INSTANCE_COUNT"`

	// VolumeSize is the EBS volume size in GB.
	VolumeSize string `env:"INPUT_VOLUME_SIZE"`

	// MaxRuntime is the remote job's maximum runtime in seconds.
	MaxRuntime string `env:"INPUT_MAX_RUNTIME"`

	// InputDataConfig is a JSON array of input channel definitions.
	InputDataConfig string `env:"INPUT_INPUT_DATA_CONFIG"`

	// OutputDataConfig is a JSON object with the S3 output location.
	OutputDataConfig string `env:"INPUT_OUTPUT_DATA_CONFIG"`

	// HyperParameters is a JSON object mapping names to scalar values.
	HyperParameters string `env:"INPUT_HYPERPARAMETERS"`

	// Environment is a JSON object of container environment variables.
	Environment string `env:"INPUT_ENVIRONMENT"`

	// VPCConfig is a JSON object with SecurityGroupIds and Subnets.
	VPCConfig string `env:"INPUT_VPC_CONFIG"`

	// Tags is a JSON object mapping tag keys to values.
	Tags string `env:"INPUT_TAGS"`

	// OutputQueries is a JSON object mapping extra output names to JMESPath
	// expressions evaluated against the resolved training job definition.
	OutputQueries string `env:"INPUT_OUTPUT_QUERIES"`

	// WaitForCompletion controls whether the run blocks until the job
	// reaches a terminal state. Anything other than "true" disables waiting.
	WaitForCompletion string `env:"INPUT_WAIT_FOR_COMPLETION"`

	// CheckInterval is the poll interval in seconds while waiting.
	CheckInterval string `env:"INPUT_CHECK_INTERVAL"`

	// Region mirrors AWSConfig.Region so validation can surface advisory
	// warnings for uncommon regions without reading the environment.
	Region string `env:"INPUT_AWS_REGION"`
}
