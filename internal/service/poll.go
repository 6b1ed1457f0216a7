package service

import (
	"context"
	"log/slog"
	"time"

	retry "github.com/avast/retry-go/v4"

	"github.com/mlops-actions/sagemaker-training-action/internal/domain/model"
)

// maxRetryDelay caps the backoff between transient retries so a long budget
// does not stretch individual gaps past the poll cadence by much.
const maxRetryDelay = 30 * time.Second

// await polls the remote job until it reaches a terminal state or the
// wall-clock budget is exhausted. The returned status is the terminal
// snapshot, or the last snapshot seen when the error is non-nil.
//
// The deadline is computed from elapsed wall-clock time, not poll count, and
// is honored at every wait boundary: the sleep before the next poll is
// capped at the time remaining. A terminal read ends the loop immediately;
// no later read can supersede it.
func (o *Orchestrator) await(
	ctx context.Context,
	logger *slog.Logger,
	handle model.JobHandle,
	wait model.WaitPolicy,
) (*model.JobStatus, error) {
	started := time.Now()
	deadline := started.Add(wait.MaxWait)
	var last *model.JobStatus

	for {
		status, err := o.describeWithRetry(ctx, logger, handle)
		if err != nil {
			return last, err
		}
		last = status

		logger.InfoContext(ctx, "training job status",
			"status", status.State, "elapsed", time.Since(started).Round(time.Second))
		if status.SecondaryStatus != "" {
			logger.DebugContext(ctx, "training job secondary status", "secondary_status", status.SecondaryStatus)
		}

		if status.State.Terminal() {
			return status, nil
		}

		remaining := time.Until(deadline)
		if remaining <= 0 {
			return last, &model.TimeoutError{Handle: handle, LastState: last.State, Budget: wait.MaxWait}
		}

		sleep := wait.PollInterval
		if remaining < sleep {
			sleep = remaining
		}
		timer := time.NewTimer(sleep)
		select {
		case <-ctx.Done():
			timer.Stop()
			return last, ctx.Err()
		case <-timer.C:
		}
	}
}

// describeWithRetry performs one status read, retrying transient faults in
// place with backoff. The budget bounds consecutive transient failures; any
// successful read resets it. Non-transient failures are fatal immediately.
func (o *Orchestrator) describeWithRetry(
	ctx context.Context,
	logger *slog.Logger,
	handle model.JobHandle,
) (*model.JobStatus, error) {
	var status *model.JobStatus
	attempts := 0

	err := retry.Do(
		func() error {
			attempts++
			st, err := o.api.DescribeTrainingJob(ctx, handle.Name)
			if err != nil {
				return err
			}
			status = st
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(uint(o.retryBudget+1)),
		retry.RetryIf(model.IsTransient),
		retry.Delay(o.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.MaxDelay(maxRetryDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.WarnContext(ctx, "transient status check failure", "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return nil, &model.PollingError{Handle: handle, Attempts: attempts, Err: err}
	}
	return status, nil
}
