package sagemakerapi

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	smtypes "github.com/aws/aws-sdk-go-v2/service/sagemaker/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mlops-actions/sagemaker-training-action/internal/domain/model"
)

type fakeAPI struct {
	createOut *sagemaker.CreateTrainingJobOutput
	createErr error
	descOut   *sagemaker.DescribeTrainingJobOutput
	descErr   error

	lastDescribe *sagemaker.DescribeTrainingJobInput
}

func (f *fakeAPI) CreateTrainingJob(_ context.Context, _ *sagemaker.CreateTrainingJobInput, _ ...func(*sagemaker.Options)) (*sagemaker.CreateTrainingJobOutput, error) {
	return f.createOut, f.createErr
}

func (f *fakeAPI) DescribeTrainingJob(_ context.Context, in *sagemaker.DescribeTrainingJobInput, _ ...func(*sagemaker.Options)) (*sagemaker.DescribeTrainingJobOutput, error) {
	f.lastDescribe = in
	return f.descOut, f.descErr
}

func TestClient_CreateTrainingJob(t *testing.T) {
	arn := "arn:aws:sagemaker:us-east-1:123456789012:training-job/my-job"
	c := New(&fakeAPI{createOut: &sagemaker.CreateTrainingJobOutput{TrainingJobArn: aws.String(arn)}})

	handle, err := c.CreateTrainingJob(context.Background(), &sagemaker.CreateTrainingJobInput{
		TrainingJobName: aws.String("my-job"),
	})
	require.NoError(t, err)
	assert.Equal(t, model.JobHandle{Name: "my-job", ARN: arn}, handle)
}

func TestClient_CreateTrainingJob_ServiceErrorIsVerbatim(t *testing.T) {
	c := New(&fakeAPI{createErr: &smithy.GenericAPIError{
		Code:    "ResourceInUse",
		Message: "Training job names must be unique within an AWS account",
	}})

	_, err := c.CreateTrainingJob(context.Background(), &sagemaker.CreateTrainingJobInput{
		TrainingJobName: aws.String("my-job"),
	})
	require.Error(t, err)

	var se *model.SubmissionError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "my-job", se.JobName)
	assert.Equal(t, "ResourceInUse", se.Code)
	assert.Equal(t, "Training job names must be unique within an AWS account", se.Message)
}

func TestClient_DescribeTrainingJob_Mapping(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	started := created.Add(2 * time.Minute)
	ended := started.Add(time.Hour)

	c := New(&fakeAPI{descOut: &sagemaker.DescribeTrainingJobOutput{
		TrainingJobStatus: smtypes.TrainingJobStatusCompleted,
		SecondaryStatus:   smtypes.SecondaryStatusCompleted,
		ModelArtifacts:    &smtypes.ModelArtifacts{S3ModelArtifacts: aws.String("s3://b/model.tar.gz")},
		CreationTime:      &created,
		TrainingStartTime: &started,
		TrainingEndTime:   &ended,
	}})

	status, err := c.DescribeTrainingJob(context.Background(), "my-job")
	require.NoError(t, err)

	assert.Equal(t, model.StateCompleted, status.State)
	assert.Equal(t, "Completed", status.SecondaryStatus)
	assert.Equal(t, "s3://b/model.tar.gz", status.ArtifactsURI)
	assert.Equal(t, &created, status.CreatedAt)
	assert.Equal(t, &started, status.StartedAt)
	assert.Equal(t, &ended, status.EndedAt)

	require.NotNil(t, c.api.(*fakeAPI).lastDescribe)
	assert.Equal(t, "my-job", aws.ToString(c.api.(*fakeAPI).lastDescribe.TrainingJobName))
}

func TestClient_DescribeTrainingJob_FailureReasonVerbatim(t *testing.T) {
	reason := "AlgorithmError: out of memory"
	c := New(&fakeAPI{descOut: &sagemaker.DescribeTrainingJobOutput{
		TrainingJobStatus: smtypes.TrainingJobStatusFailed,
		FailureReason:     aws.String(reason),
	}})

	status, err := c.DescribeTrainingJob(context.Background(), "my-job")
	require.NoError(t, err)
	assert.Equal(t, model.StateFailed, status.State)
	assert.Equal(t, reason, status.FailureReason)
}

func TestStateFrom(t *testing.T) {
	tests := []struct {
		in   smtypes.TrainingJobStatus
		want model.TrainingJobState
	}{
		{in: smtypes.TrainingJobStatusInProgress, want: model.StateInProgress},
		{in: smtypes.TrainingJobStatusCompleted, want: model.StateCompleted},
		{in: smtypes.TrainingJobStatusFailed, want: model.StateFailed},
		{in: smtypes.TrainingJobStatusStopping, want: model.StateStopping},
		{in: smtypes.TrainingJobStatusStopped, want: model.StateStopped},
		{in: smtypes.TrainingJobStatus(""), want: model.StateSubmitted},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stateFrom(tt.in))
	}
}

func TestClient_DescribeTrainingJob_ErrorClassification(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		wantTransient bool
	}{
		{
			name:          "throttling is transient",
			err:           &smithy.GenericAPIError{Code: "ThrottlingException", Message: "slow down"},
			wantTransient: true,
		},
		{
			name:          "server fault is transient",
			err:           &smithy.GenericAPIError{Code: "SomethingBroke", Fault: smithy.FaultServer},
			wantTransient: true,
		},
		{
			name:          "connection-level failure is transient",
			err:           errors.New("dial tcp: connection refused"),
			wantTransient: true,
		},
		{
			name:          "client fault is fatal",
			err:           &smithy.GenericAPIError{Code: "ValidationException", Message: "no such job", Fault: smithy.FaultClient},
			wantTransient: false,
		},
		{
			name:          "cancellation is fatal",
			err:           context.Canceled,
			wantTransient: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(&fakeAPI{descErr: tt.err})
			_, err := c.DescribeTrainingJob(context.Background(), "my-job")
			require.Error(t, err)
			assert.Equal(t, tt.wantTransient, model.IsTransient(err))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
