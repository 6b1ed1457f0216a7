// Package core defines the boundary interfaces the orchestration engine
// depends on. Implementations live under internal/adapters; tests use the
// doubles in internal/testutil and internal/mocks.
package core

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sagemaker"

	"github.com/mlops-actions/sagemaker-training-action/internal/domain/model"
)

// TrainingJobAPI is the already-authenticated remote API surface the engine
// drives. Credentials, region, and token exchange are resolved before an
// implementation is handed to the engine.
type TrainingJobAPI interface {
	// CreateTrainingJob submits the job exactly once and returns its handle.
	// Failures carry the remote error code and message verbatim and must not
	// be retried by the caller.
	CreateTrainingJob(ctx context.Context, in *sagemaker.CreateTrainingJobInput) (model.JobHandle, error)

	// DescribeTrainingJob returns a fresh status snapshot for the named job.
	// Transient faults (throttling, network blips) are marked so callers can
	// retry them in place; see model.IsTransient.
	DescribeTrainingJob(ctx context.Context, name string) (*model.JobStatus, error)
}

// OutputSink receives the named values and diagnostics the pipeline consumes.
type OutputSink interface {
	// Set publishes one named output value.
	Set(name, value string) error

	// Mask registers a sensitive value so the runner redacts it from logs.
	Mask(value string)

	// Warning and Error emit runner-level annotations.
	Warning(format string, args ...any)
	Error(format string, args ...any)

	// Summary appends rendered markdown to the step summary, if available.
	Summary(markdown string) error
}

// QueryEvaluator validates and evaluates user-supplied extraction
// expressions against structured data.
type QueryEvaluator interface {
	// Validate reports whether expr is a well-formed expression.
	Validate(expr string) error

	// Evaluate applies expr to data and returns the extracted value.
	Evaluate(expr string, data any) (any, error)
}
