// Package testutil provides testing utilities and helpers for the training
// action.
package testutil

import (
	"time"

	"github.com/mlops-actions/sagemaker-training-action/internal/domain/model"
)

// JobSpecBuilder provides a fluent interface for building JobSpec objects
// for testing.
type JobSpecBuilder struct {
	spec *model.JobSpec
}

// NewJobSpec creates a new JobSpecBuilder with sensible defaults: a valid
// minimal job that waits for completion with a fast poll cadence.
func NewJobSpec() *JobSpecBuilder {
	return &JobSpecBuilder{
		spec: &model.JobSpec{
			JobName:           "test-training-job",
			TrainingImage:     "123456789012.dkr.ecr.us-east-1.amazonaws.com/training:latest",
			RoleARN:           "arn:aws:iam::123456789012:role/SageMakerExecutionRole",
			InstanceType:      "ml.m5.large",
			InstanceCount:     1,
			VolumeSizeGB:      30,
			MaxRuntimeSeconds: 86400,
			InputChannels: []model.InputChannel{
				{Name: "train", S3URI: "s3://test-bucket/train"},
			},
			OutputPath: "s3://test-bucket/output",
			Wait: model.WaitPolicy{
				Enabled:      true,
				PollInterval: time.Millisecond,
				MaxWait:      time.Second,
			},
		},
	}
}

// WithJobName sets the job name.
func (b *JobSpecBuilder) WithJobName(name string) *JobSpecBuilder {
	b.spec.JobName = name
	return b
}

// WithTrainingImage sets the training image URI.
func (b *JobSpecBuilder) WithTrainingImage(image string) *JobSpecBuilder {
	b.spec.TrainingImage = image
	return b
}

// WithRoleARN sets the execution role.
func (b *JobSpecBuilder) WithRoleARN(arn string) *JobSpecBuilder {
	b.spec.RoleARN = arn
	return b
}

// WithInstances sets the instance type and count.
func (b *JobSpecBuilder) WithInstances(instanceType string, count int) *JobSpecBuilder {
	b.spec.InstanceType = instanceType
	b.spec.InstanceCount = count
	return b
}

// WithChannels replaces the input channels.
func (b *JobSpecBuilder) WithChannels(channels ...model.InputChannel) *JobSpecBuilder {
	b.spec.InputChannels = channels
	return b
}

// WithHyperParameters sets the hyperparameters map.
func (b *JobSpecBuilder) WithHyperParameters(hp map[string]string) *JobSpecBuilder {
	b.spec.HyperParameters = hp
	return b
}

// WithEnvironment sets the container environment map.
func (b *JobSpecBuilder) WithEnvironment(env map[string]string) *JobSpecBuilder {
	b.spec.Environment = env
	return b
}

// WithTags sets the resource tags.
func (b *JobSpecBuilder) WithTags(tags map[string]string) *JobSpecBuilder {
	b.spec.Tags = tags
	return b
}

// WithVPC sets the network isolation config.
func (b *JobSpecBuilder) WithVPC(vpc *model.VPCConfig) *JobSpecBuilder {
	b.spec.VPC = vpc
	return b
}

// WithOutputQueries sets the output query map.
func (b *JobSpecBuilder) WithOutputQueries(q map[string]string) *JobSpecBuilder {
	b.spec.OutputQueries = q
	return b
}

// WithWait sets the full wait policy.
func (b *JobSpecBuilder) WithWait(policy model.WaitPolicy) *JobSpecBuilder {
	b.spec.Wait = policy
	return b
}

// WithoutWait disables waiting for completion.
func (b *JobSpecBuilder) WithoutWait() *JobSpecBuilder {
	b.spec.Wait.Enabled = false
	return b
}

// WithMaxWait sets the wait budget.
func (b *JobSpecBuilder) WithMaxWait(d time.Duration) *JobSpecBuilder {
	b.spec.Wait.MaxWait = d
	return b
}

// Build returns the constructed JobSpec.
func (b *JobSpecBuilder) Build() *model.JobSpec {
	return b.spec
}
