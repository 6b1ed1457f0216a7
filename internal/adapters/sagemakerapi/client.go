// Package sagemakerapi adapts the AWS SageMaker SDK client to the narrow
// training-job surface the orchestration engine consumes.
package sagemakerapi

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"
	smtypes "github.com/aws/aws-sdk-go-v2/service/sagemaker/types"
	"github.com/aws/smithy-go"

	"github.com/mlops-actions/sagemaker-training-action/internal/core"
	"github.com/mlops-actions/sagemaker-training-action/internal/domain/model"
)

// API is the subset of the SDK client the adapter needs; the concrete
// *sagemaker.Client satisfies it.
type API interface {
	CreateTrainingJob(ctx context.Context, params *sagemaker.CreateTrainingJobInput, optFns ...func(*sagemaker.Options)) (*sagemaker.CreateTrainingJobOutput, error)
	DescribeTrainingJob(ctx context.Context, params *sagemaker.DescribeTrainingJobInput, optFns ...func(*sagemaker.Options)) (*sagemaker.DescribeTrainingJobOutput, error)
}

// Client implements core.TrainingJobAPI against the SageMaker SDK. It maps
// SDK responses to domain types and classifies describe failures so the
// engine can retry transient ones in place.
type Client struct {
	api API
}

var _ core.TrainingJobAPI = (*Client)(nil)

// New wraps an SDK client.
func New(api API) *Client { return &Client{api: api} }

// CreateTrainingJob submits the job. Failures carry the service error code
// and message verbatim; the caller must not retry them.
func (c *Client) CreateTrainingJob(ctx context.Context, in *sagemaker.CreateTrainingJobInput) (model.JobHandle, error) {
	out, err := c.api.CreateTrainingJob(ctx, in)
	if err != nil {
		return model.JobHandle{}, submissionError(aws.ToString(in.TrainingJobName), err)
	}
	return model.JobHandle{
		Name: aws.ToString(in.TrainingJobName),
		ARN:  aws.ToString(out.TrainingJobArn),
	}, nil
}

// DescribeTrainingJob returns a fresh status snapshot for the named job.
func (c *Client) DescribeTrainingJob(ctx context.Context, name string) (*model.JobStatus, error) {
	out, err := c.api.DescribeTrainingJob(ctx, &sagemaker.DescribeTrainingJobInput{
		TrainingJobName: aws.String(name),
	})
	if err != nil {
		return nil, classifyDescribeError(name, err)
	}
	return statusFrom(out), nil
}

func statusFrom(out *sagemaker.DescribeTrainingJobOutput) *model.JobStatus {
	status := &model.JobStatus{
		State:           stateFrom(out.TrainingJobStatus),
		SecondaryStatus: string(out.SecondaryStatus),
		FailureReason:   aws.ToString(out.FailureReason),
		CreatedAt:       out.CreationTime,
		StartedAt:       out.TrainingStartTime,
		EndedAt:         out.TrainingEndTime,
	}
	if out.ModelArtifacts != nil {
		status.ArtifactsURI = aws.ToString(out.ModelArtifacts.S3ModelArtifacts)
	}
	return status
}

func stateFrom(s smtypes.TrainingJobStatus) model.TrainingJobState {
	switch s {
	case smtypes.TrainingJobStatusInProgress:
		return model.StateInProgress
	case smtypes.TrainingJobStatusCompleted:
		return model.StateCompleted
	case smtypes.TrainingJobStatusFailed:
		return model.StateFailed
	case smtypes.TrainingJobStatusStopping:
		return model.StateStopping
	case smtypes.TrainingJobStatusStopped:
		return model.StateStopped
	default:
		return model.StateSubmitted
	}
}

func submissionError(jobName string, err error) error {
	se := &model.SubmissionError{JobName: jobName, Err: err}
	var ae smithy.APIError
	if errors.As(err, &ae) {
		se.Code = ae.ErrorCode()
		se.Message = ae.ErrorMessage()
	}
	return se
}

// transientCodes are service error codes that indicate a momentary fault
// rather than a problem with the request or the job.
var transientCodes = map[string]struct{}{
	"Throttling":                             {},
	"ThrottlingException":                    {},
	"TooManyRequestsException":               {},
	"RequestLimitExceeded":                   {},
	"ProvisionedThroughputExceededException": {},
	"RequestTimeout":                         {},
	"RequestTimeoutException":                {},
	"ServiceUnavailable":                     {},
	"ServiceUnavailableException":            {},
	"InternalFailure":                        {},
	"InternalServerError":                    {},
}

// classifyDescribeError wraps a describe failure and marks it transient when
// it is safe to retry in place. Cancellation is never transient. An error
// with no structured service response means the request never completed;
// those connection-level faults are retryable.
func classifyDescribeError(name string, err error) error {
	wrapped := fmt.Errorf("describe training job %q: %w", name, err)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return wrapped
	}
	var ae smithy.APIError
	if errors.As(err, &ae) {
		if _, ok := transientCodes[ae.ErrorCode()]; ok || ae.ErrorFault() == smithy.FaultServer {
			return model.Transient(wrapped)
		}
		return wrapped
	}
	return model.Transient(wrapped)
}
