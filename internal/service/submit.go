package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/service/sagemaker"

	"github.com/mlops-actions/sagemaker-training-action/internal/domain/model"
)

// submit issues the one-shot job-creation call. Submission is never retried:
// a duplicate job name is a correctness error, and a blind retry after an
// ambiguous failure could create a second job under the same name.
func (o *Orchestrator) submit(
	ctx context.Context,
	logger *slog.Logger,
	req *sagemaker.CreateTrainingJobInput,
	jobName string,
) (model.JobHandle, error) {
	logger.InfoContext(ctx, "submitting training job")

	handle, err := o.api.CreateTrainingJob(ctx, req)
	if err != nil {
		var se *model.SubmissionError
		if !errors.As(err, &se) {
			err = &model.SubmissionError{JobName: jobName, Err: err}
		}
		logger.ErrorContext(ctx, "training job submission failed", "error", err)
		return model.JobHandle{}, err
	}

	logger.InfoContext(ctx, "training job submitted", "job_arn", handle.ARN)
	return handle, nil
}
