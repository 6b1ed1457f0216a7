// Package request maps a validated JobSpec to the SageMaker
// CreateTrainingJob request shape.
package request

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker/types"

	"github.com/mlops-actions/sagemaker-training-action/internal/domain/model"
)

// Build maps a JobSpec to a CreateTrainingJobInput. It is a pure function:
// no network access, no clock, no randomness — building the same spec twice
// yields identical requests. Channel order is preserved as given; tags are
// emitted sorted by key.
func Build(spec *model.JobSpec) *sagemaker.CreateTrainingJobInput {
	in := &sagemaker.CreateTrainingJobInput{
		TrainingJobName: aws.String(spec.JobName),
		RoleArn:         aws.String(spec.RoleARN),
		AlgorithmSpecification: &types.AlgorithmSpecification{
			TrainingImage:     aws.String(spec.TrainingImage),
			TrainingInputMode: types.TrainingInputModeFile,
		},
		InputDataConfig: buildChannels(spec.InputChannels),
		OutputDataConfig: &types.OutputDataConfig{
			S3OutputPath: aws.String(spec.OutputPath),
		},
		ResourceConfig: &types.ResourceConfig{
			InstanceType:   types.TrainingInstanceType(spec.InstanceType),
			InstanceCount:  aws.Int32(int32(spec.InstanceCount)),
			VolumeSizeInGB: aws.Int32(int32(spec.VolumeSizeGB)),
		},
		StoppingCondition: &types.StoppingCondition{
			MaxRuntimeInSeconds: aws.Int32(int32(spec.MaxRuntimeSeconds)),
		},
	}

	if len(spec.HyperParameters) > 0 {
		in.HyperParameters = copyStringMap(spec.HyperParameters)
	}
	if len(spec.Environment) > 0 {
		in.Environment = copyStringMap(spec.Environment)
	}
	if spec.VPC != nil {
		in.VpcConfig = &types.VpcConfig{
			SecurityGroupIds: append([]string(nil), spec.VPC.SecurityGroupIDs...),
			Subnets:          append([]string(nil), spec.VPC.Subnets...),
		}
	}
	if len(spec.Tags) > 0 {
		in.Tags = buildTags(spec.Tags)
	}

	return in
}

// MarshalDefinition serializes the resolved request for the
// training-job-definition output and for output-query evaluation. JSON
// object keys are emitted sorted, so the result is stable across runs.
func MarshalDefinition(in *sagemaker.CreateTrainingJobInput) (string, error) {
	b, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("marshal training job definition: %w", err)
	}
	return string(b), nil
}

func buildChannels(channels []model.InputChannel) []types.Channel {
	out := make([]types.Channel, 0, len(channels))
	for _, ch := range channels {
		dataType := types.S3DataTypeS3Prefix
		if ch.S3DataType != "" {
			dataType = types.S3DataType(ch.S3DataType)
		}
		inputMode := types.TrainingInputModeFile
		if ch.InputMode != "" {
			inputMode = types.TrainingInputMode(ch.InputMode)
		}
		c := types.Channel{
			ChannelName: aws.String(ch.Name),
			DataSource: &types.DataSource{
				S3DataSource: &types.S3DataSource{
					S3Uri:      aws.String(ch.S3URI),
					S3DataType: dataType,
				},
			},
			InputMode: inputMode,
		}
		if ch.ContentType != "" {
			c.ContentType = aws.String(ch.ContentType)
		}
		if ch.CompressionType != "" {
			c.CompressionType = types.CompressionType(ch.CompressionType)
		}
		out = append(out, c)
	}
	return out
}

// buildTags emits tags sorted by key. The JobSpec tag mapping is unordered;
// sorting keeps rebuilt requests byte-identical.
func buildTags(tags map[string]string) []types.Tag {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]types.Tag, 0, len(keys))
	for _, k := range keys {
		out = append(out, types.Tag{
			Key:   aws.String(k),
			Value: aws.String(tags[k]),
		})
	}
	return out
}

func copyStringMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
