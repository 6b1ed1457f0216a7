// Package service implements the job orchestration engine: submitting a
// training job, supervising it to a terminal state, and mapping the result
// to pipeline outputs.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mlops-actions/sagemaker-training-action/internal/core"
	"github.com/mlops-actions/sagemaker-training-action/internal/domain/model"
	"github.com/mlops-actions/sagemaker-training-action/internal/request"
)

const (
	defaultRetryBudget = 5
	defaultRetryDelay  = 2 * time.Second
)

// Options configures the orchestrator.
type Options struct {
	API     core.TrainingJobAPI
	Sink    core.OutputSink
	Queries core.QueryEvaluator
	Logger  *slog.Logger

	// RetryBudget is the number of consecutive transient status-check
	// failures tolerated before the run fails; defaults to 5.
	RetryBudget int

	// RetryDelay is the initial backoff between transient retries;
	// defaults to 2s.
	RetryDelay time.Duration
}

// Orchestrator drives exactly one training job end to end. There is one
// logical thread of control: the only blocking operations are the remote
// calls and the deliberate waits between polls.
type Orchestrator struct {
	api         core.TrainingJobAPI
	sink        core.OutputSink
	queries     core.QueryEvaluator
	logger      *slog.Logger
	retryBudget int
	retryDelay  time.Duration
}

// New validates options, applies defaults, and constructs an Orchestrator.
func New(opts Options) (*Orchestrator, error) {
	if err := validateOptions(&opts); err != nil {
		return nil, err
	}
	return &Orchestrator{
		api:         opts.API,
		sink:        opts.Sink,
		queries:     opts.Queries,
		logger:      opts.Logger,
		retryBudget: opts.RetryBudget,
		retryDelay:  opts.RetryDelay,
	}, nil
}

// validateOptions validates and sets defaults for Options.
func validateOptions(opts *Options) error {
	if opts.API == nil {
		return errors.New("training job API is required")
	}
	if opts.Sink == nil {
		return errors.New("output sink is required")
	}
	if opts.Queries == nil {
		opts.Queries = NewQueryEvaluator()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.RetryBudget <= 0 {
		opts.RetryBudget = defaultRetryBudget
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = defaultRetryDelay
	}
	return nil
}

// Run executes one orchestration run for the given spec.
//
// It returns a nil outcome only when the run aborts before a job exists
// (request marshalling or submission failure); in that case no outputs are
// written. Once submission succeeds an outcome is always returned, with
// whatever fields are known populated, alongside any terminal error
// (timeout, polling failure, or remote job failure).
func (o *Orchestrator) Run(ctx context.Context, spec *model.JobSpec) (*model.RunOutcome, error) {
	runID := uuid.NewString()
	logger := o.logger.With("run_id", runID, "job_name", spec.JobName)

	start := time.Now()
	req := request.Build(spec)
	definition, err := request.MarshalDefinition(req)
	if err != nil {
		return nil, err
	}

	handle, err := o.submit(ctx, logger, req, spec.JobName)
	if err != nil {
		return nil, err
	}
	o.publishSubmitted(ctx, logger, handle, spec, definition)

	if !spec.Wait.Enabled {
		logger.InfoContext(ctx, "not waiting for completion, run succeeds on submission")
		outcome := o.finishDetached(ctx, logger, runID, handle, start, definition, spec)
		return outcome, nil
	}

	logger.InfoContext(ctx, "waiting for training job completion",
		"poll_interval", spec.Wait.PollInterval, "max_wait", spec.Wait.MaxWait)
	status, pollErr := o.await(ctx, logger, handle, spec.Wait)

	outcome := o.finish(ctx, logger, finishInput{
		runID:      runID,
		spec:       spec,
		handle:     handle,
		definition: definition,
		status:     status,
		start:      start,
		pollErr:    pollErr,
	})
	return outcome, pollErr
}

// publishSubmitted writes the outputs that are known as soon as submission
// succeeds, before any polling happens.
func (o *Orchestrator) publishSubmitted(
	ctx context.Context,
	logger *slog.Logger,
	handle model.JobHandle,
	spec *model.JobSpec,
	definition string,
) {
	o.setOutput(ctx, logger, "job-name", handle.Name)
	o.setOutput(ctx, logger, "job-arn", handle.ARN)
	o.setOutput(ctx, logger, "training-image", spec.TrainingImage)
	o.setOutput(ctx, logger, "training-job-definition", definition)
}

// setOutput publishes one output value; a sink failure is logged and does
// not abort the run.
func (o *Orchestrator) setOutput(ctx context.Context, logger *slog.Logger, name, value string) {
	if err := o.sink.Set(name, value); err != nil {
		logger.ErrorContext(ctx, "write step output failed", "output", name, "error", err)
	}
}
