package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/mlops-actions/sagemaker-training-action/internal/domain/model"
	"github.com/mlops-actions/sagemaker-training-action/internal/util"
)

// finishInput carries everything known about the run when it ends.
type finishInput struct {
	runID      string
	spec       *model.JobSpec
	handle     model.JobHandle
	definition string
	status     *model.JobStatus
	start      time.Time
	pollErr    error
}

// finish maps the terminal status (or poll error) to a RunOutcome and
// publishes the outcome outputs. Timeouts and polling failures still
// populate every known field so the pipeline keeps diagnostic context.
func (o *Orchestrator) finish(ctx context.Context, logger *slog.Logger, in finishInput) *model.RunOutcome {
	out := &model.RunOutcome{
		RunID:   in.runID,
		Handle:  in.handle,
		Elapsed: time.Since(in.start),
	}

	lastState := model.StateInProgress
	if in.status != nil {
		lastState = in.status.State
	}

	var te *model.TimeoutError
	switch {
	case errors.As(in.pollErr, &te):
		out.TimedOut = true
		out.Err = in.pollErr
		out.FinalState = lastState
		logger.ErrorContext(ctx, "timed out waiting for training job",
			"last_status", lastState, "budget", te.Budget)
	case in.pollErr != nil:
		out.Err = in.pollErr
		out.FinalState = lastState
		logger.ErrorContext(ctx, "training job supervision failed", "error", in.pollErr)
	case in.status.State == model.StateCompleted:
		out.FinalState = model.StateCompleted
		out.ArtifactsURI = in.status.ArtifactsURI
		logger.InfoContext(ctx, "training job completed",
			"model_artifacts", out.ArtifactsURI, "elapsed", out.Elapsed.Round(time.Second))
	default:
		// Remote-reported Failed or Stopped; the reason passes through
		// verbatim, never paraphrased.
		out.FinalState = in.status.State
		out.FailureReason = in.status.FailureReason
		out.Err = &model.RemoteJobFailure{Handle: in.handle, State: in.status.State, Reason: in.status.FailureReason}
		logger.ErrorContext(ctx, "training job finished unsuccessfully",
			"status", in.status.State, "failure_reason", in.status.FailureReason)
	}

	o.publishOutcome(ctx, logger, in, out)
	o.annotate(out)
	return out
}

// finishDetached ends the run when wait-for-completion is disabled: a single
// best-effort status read, then immediate success. A failing read is logged
// and ignored; submission success alone decides the result.
func (o *Orchestrator) finishDetached(
	ctx context.Context,
	logger *slog.Logger,
	runID string,
	handle model.JobHandle,
	start time.Time,
	definition string,
	spec *model.JobSpec,
) *model.RunOutcome {
	state := model.StateInProgress
	if st, err := o.api.DescribeTrainingJob(ctx, handle.Name); err != nil {
		logger.WarnContext(ctx, "post-submission status check failed", "error", err)
	} else if st != nil {
		state = st.State
	}

	out := &model.RunOutcome{
		RunID:      runID,
		Handle:     handle,
		FinalState: state,
		Elapsed:    time.Since(start),
	}
	o.publishOutcome(ctx, logger, finishInput{
		runID:      runID,
		spec:       spec,
		handle:     handle,
		definition: definition,
		start:      start,
	}, out)
	return out
}

// publishOutcome writes the outcome outputs. Every declared output is set on
// every path; fields not applicable to the outcome are published empty.
func (o *Orchestrator) publishOutcome(ctx context.Context, logger *slog.Logger, in finishInput, out *model.RunOutcome) {
	o.setOutput(ctx, logger, "job-status", string(out.FinalState))
	o.setOutput(ctx, logger, "model-artifacts", out.ArtifactsURI)
	o.setOutput(ctx, logger, "failure-reason", out.FailureReason)
	o.setOutput(ctx, logger, "elapsed-seconds", strconv.Itoa(int(out.Elapsed.Seconds())))
	o.setOutput(ctx, logger, "timed-out", strconv.FormatBool(out.TimedOut))

	o.publishQueries(ctx, logger, in.spec.OutputQueries, in.definition)

	if err := o.sink.Summary(renderSummary(out)); err != nil {
		logger.ErrorContext(ctx, "write step summary failed", "error", err)
	}
}

// publishQueries evaluates the configured output queries against the
// resolved job definition and publishes each result as an output.
func (o *Orchestrator) publishQueries(ctx context.Context, logger *slog.Logger, queries map[string]string, definition string) {
	if len(queries) == 0 {
		return
	}
	var doc any
	if err := json.Unmarshal([]byte(definition), &doc); err != nil {
		logger.ErrorContext(ctx, "decode job definition for output queries failed", "error", err)
		return
	}

	names := make([]string, 0, len(queries))
	for name := range queries {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value, err := o.queries.Evaluate(queries[name], doc)
		if err != nil {
			logger.ErrorContext(ctx, "evaluate output query failed", "output", name, "error", err)
			continue
		}
		o.setOutput(ctx, logger, name, renderQueryValue(value))
	}
}

// renderQueryValue flattens a query result to an output string: strings pass
// through, nil becomes empty, everything else is JSON-encoded.
func renderQueryValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	default:
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	}
}

// annotate emits runner-level annotations for unsuccessful outcomes.
func (o *Orchestrator) annotate(out *model.RunOutcome) {
	switch {
	case out.TimedOut:
		o.sink.Warning("Gave up waiting for training job %s after %s; the job may still be running", out.Handle.Name, util.FormatDuration(out.Elapsed))
	case out.Err != nil:
		o.sink.Error("Training job %s did not complete successfully: %v", out.Handle.Name, out.Err)
	}
}

func renderSummary(out *model.RunOutcome) string {
	var b strings.Builder
	b.WriteString("### SageMaker Training Job\n\n")
	b.WriteString("| Field | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Job | `%s` |\n", out.Handle.Name)
	fmt.Fprintf(&b, "| ARN | `%s` |\n", out.Handle.ARN)
	fmt.Fprintf(&b, "| Status | %s |\n", out.FinalState)
	if out.ArtifactsURI != "" {
		fmt.Fprintf(&b, "| Model artifacts | `%s` |\n", out.ArtifactsURI)
	}
	if out.FailureReason != "" {
		fmt.Fprintf(&b, "| Failure reason | %s |\n", out.FailureReason)
	}
	if out.TimedOut {
		b.WriteString("| Timed out | true |\n")
	}
	fmt.Fprintf(&b, "| Duration | %s |\n", util.FormatDuration(out.Elapsed))
	return b.String()
}
