package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Process exit taxonomy. Timeout is deliberately distinct from failure: a
// timed-out run gave up waiting, the remote job's true outcome is unknown.
const (
	ExitSuccess = 0
	ExitFailure = 1
	ExitTimeout = 2
)

// ValidationError reports every violation found in the raw inputs, not just
// the first, so a caller sees all problems in one pass.
type ValidationError struct {
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("input validation failed with %d violation(s): %s",
		len(e.Violations), strings.Join(e.Violations, "; "))
}

// SubmissionError indicates the remote service rejected job creation. It is
// fatal: submission is never retried, because a blind retry risks creating a
// duplicate job under the same name.
type SubmissionError struct {
	JobName string
	Code    string
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("submit training job %q: %s: %s", e.JobName, e.Code, e.Message)
	}
	return fmt.Sprintf("submit training job %q: %v", e.JobName, e.Err)
}

func (e *SubmissionError) Unwrap() error { return e.Err }

// PollingError indicates status checks failed past the transient-retry
// budget. The remote job is unaffected and may still complete on its own.
type PollingError struct {
	Handle   JobHandle
	Attempts int
	Err      error
}

func (e *PollingError) Error() string {
	return fmt.Sprintf("poll training job %q: gave up after %d attempt(s): %v", e.Handle.Name, e.Attempts, e.Err)
}

func (e *PollingError) Unwrap() error { return e.Err }

// TimeoutError indicates the runtime budget was exhausted while the job was
// still non-terminal. The run gives up waiting; it does not stop the job.
type TimeoutError struct {
	Handle    JobHandle
	LastState TrainingJobState
	Budget    time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("training job %q did not reach a terminal state within %s (last seen %s)",
		e.Handle.Name, e.Budget, e.LastState)
}

// RemoteJobFailure indicates the remote service reported a terminal Failed or
// Stopped state. The failure reason is carried verbatim, never paraphrased.
type RemoteJobFailure struct {
	Handle JobHandle
	State  TrainingJobState
	Reason string
}

func (e *RemoteJobFailure) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("training job %q finished with status %s: %s", e.Handle.Name, e.State, e.Reason)
	}
	return fmt.Sprintf("training job %q finished with status %s", e.Handle.Name, e.State)
}

// ExitCodeForError maps an orchestration error to the process exit taxonomy.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var te *TimeoutError
	if errors.As(err, &te) {
		return ExitTimeout
	}
	return ExitFailure
}

// transientError marks an error as a transient remote fault (throttling,
// network blip) that is safe to retry in place.
type transientError struct {
	err error
}

func (e *transientError) Error() string { return e.err.Error() }

func (e *transientError) Unwrap() error { return e.err }

// Transient wraps err so IsTransient reports true for it.
func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &transientError{err: err}
}

// IsTransient reports whether err is marked as a transient remote fault.
func IsTransient(err error) bool {
	var te *transientError
	return errors.As(err, &te)
}
