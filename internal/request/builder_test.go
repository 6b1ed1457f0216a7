package request

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlops-actions/sagemaker-training-action/internal/domain/model"
	"github.com/mlops-actions/sagemaker-training-action/internal/testutil"
)

func TestBuild_Minimal(t *testing.T) {
	spec := testutil.NewJobSpec().Build()

	in := Build(spec)

	assert.Equal(t, spec.JobName, aws.ToString(in.TrainingJobName))
	assert.Equal(t, spec.RoleARN, aws.ToString(in.RoleArn))

	require.NotNil(t, in.AlgorithmSpecification)
	assert.Equal(t, spec.TrainingImage, aws.ToString(in.AlgorithmSpecification.TrainingImage))
	assert.Equal(t, types.TrainingInputModeFile, in.AlgorithmSpecification.TrainingInputMode)

	require.NotNil(t, in.ResourceConfig)
	assert.Equal(t, types.TrainingInstanceType("ml.m5.large"), in.ResourceConfig.InstanceType)
	assert.Equal(t, int32(1), aws.ToInt32(in.ResourceConfig.InstanceCount))
	assert.Equal(t, int32(30), aws.ToInt32(in.ResourceConfig.VolumeSizeInGB))

	require.NotNil(t, in.StoppingCondition)
	assert.Equal(t, int32(86400), aws.ToInt32(in.StoppingCondition.MaxRuntimeInSeconds))

	require.NotNil(t, in.OutputDataConfig)
	assert.Equal(t, spec.OutputPath, aws.ToString(in.OutputDataConfig.S3OutputPath))

	assert.Nil(t, in.HyperParameters)
	assert.Nil(t, in.Environment)
	assert.Nil(t, in.VpcConfig)
	assert.Nil(t, in.Tags)
}

func TestBuild_ChannelDefaultsAndOrder(t *testing.T) {
	spec := testutil.NewJobSpec().WithChannels(
		model.InputChannel{Name: "train", S3URI: "s3://b/train"},
		model.InputChannel{Name: "validation", S3URI: "s3://b/val", S3DataType: "ManifestFile", ContentType: "text/csv", CompressionType: "Gzip", InputMode: "Pipe"},
	).Build()

	in := Build(spec)
	require.Len(t, in.InputDataConfig, 2)

	first := in.InputDataConfig[0]
	assert.Equal(t, "train", aws.ToString(first.ChannelName))
	assert.Equal(t, types.S3DataTypeS3Prefix, first.DataSource.S3DataSource.S3DataType)
	assert.Equal(t, types.TrainingInputModeFile, first.InputMode)
	assert.Nil(t, first.ContentType)

	second := in.InputDataConfig[1]
	assert.Equal(t, "validation", aws.ToString(second.ChannelName))
	assert.Equal(t, types.S3DataType("ManifestFile"), second.DataSource.S3DataSource.S3DataType)
	assert.Equal(t, types.TrainingInputMode("Pipe"), second.InputMode)
	assert.Equal(t, "text/csv", aws.ToString(second.ContentType))
	assert.Equal(t, types.CompressionType("Gzip"), second.CompressionType)
}

func TestBuild_TagsSortedByKey(t *testing.T) {
	spec := testutil.NewJobSpec().WithTags(map[string]string{
		"team":    "ml-platform",
		"cost":    "research",
		"project": "churn",
	}).Build()

	in := Build(spec)
	require.Len(t, in.Tags, 3)
	assert.Equal(t, "cost", aws.ToString(in.Tags[0].Key))
	assert.Equal(t, "project", aws.ToString(in.Tags[1].Key))
	assert.Equal(t, "team", aws.ToString(in.Tags[2].Key))
}

func TestBuild_VPC(t *testing.T) {
	spec := testutil.NewJobSpec().WithVPC(&model.VPCConfig{
		SecurityGroupIDs: []string{"sg-1"},
		Subnets:          []string{"subnet-1", "subnet-2"},
	}).Build()

	in := Build(spec)
	require.NotNil(t, in.VpcConfig)
	assert.Equal(t, []string{"sg-1"}, in.VpcConfig.SecurityGroupIds)
	assert.Equal(t, []string{"subnet-1", "subnet-2"}, in.VpcConfig.Subnets)
}

func TestBuild_Deterministic(t *testing.T) {
	spec := testutil.NewJobSpec().
		WithHyperParameters(map[string]string{"lr": "0.1", "epochs": "10"}).
		WithTags(map[string]string{"b": "2", "a": "1", "c": "3"}).
		Build()

	first, err := MarshalDefinition(Build(spec))
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := MarshalDefinition(Build(spec))
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestBuild_DoesNotAliasSpecMaps(t *testing.T) {
	hp := map[string]string{"lr": "0.1"}
	spec := testutil.NewJobSpec().WithHyperParameters(hp).Build()

	in := Build(spec)
	in.HyperParameters["lr"] = "changed"

	assert.Equal(t, "0.1", hp["lr"])
}
