// Package model defines the core data types for the SageMaker training action.
package model

import (
	"fmt"
	"strings"
	"time"
)

// TrainingJobState represents the lifecycle state of a remote training job.
//
//nolint:recvcheck // UnmarshalText needs pointer receiver, Valid/Terminal need value receivers
type TrainingJobState string

const (
	// StateSubmitted indicates the create call succeeded but no status has been read yet.
	StateSubmitted TrainingJobState = "Submitted"
	// StateInProgress indicates the remote job is queued, starting, or training.
	StateInProgress TrainingJobState = "InProgress"
	// StateStopping indicates a stop was requested remotely but has not completed.
	StateStopping TrainingJobState = "Stopping"
	// StateCompleted indicates the remote job finished successfully.
	StateCompleted TrainingJobState = "Completed"
	// StateFailed indicates the remote job finished with an error.
	StateFailed TrainingJobState = "Failed"
	// StateStopped indicates the remote job was stopped before completing.
	StateStopped TrainingJobState = "Stopped"
)

// UnmarshalText implements encoding.TextUnmarshaler for TrainingJobState.
func (s *TrainingJobState) UnmarshalText(text []byte) error {
	v := TrainingJobState(strings.TrimSpace(string(text)))
	if v.Valid() {
		*s = v
		return nil
	}
	return fmt.Errorf("invalid TrainingJobState: %q", string(text))
}

// Valid returns true if the state is a known lifecycle state.
func (s TrainingJobState) Valid() bool {
	switch s {
	case StateSubmitted, StateInProgress, StateStopping, StateCompleted, StateFailed, StateStopped:
		return true
	default:
		return false
	}
}

// Terminal returns true if the remote job will not transition out of this state.
func (s TrainingJobState) Terminal() bool {
	switch s {
	case StateCompleted, StateFailed, StateStopped:
		return true
	default:
		return false
	}
}

// InputChannel describes one training input channel. Channel order is
// significant and preserved as given by the caller.
type InputChannel struct {
	Name            string `json:"name"`
	S3URI           string `json:"s3_uri"`
	S3DataType      string `json:"s3_data_type,omitempty"`
	ContentType     string `json:"content_type,omitempty"`
	CompressionType string `json:"compression_type,omitempty"`
	InputMode       string `json:"input_mode,omitempty"`
}

// VPCConfig holds the network isolation settings for a training job.
type VPCConfig struct {
	SecurityGroupIDs []string `json:"security_group_ids"`
	Subnets          []string `json:"subnets"`
}

// WaitPolicy controls whether and how a run blocks on remote completion.
type WaitPolicy struct {
	Enabled      bool
	PollInterval time.Duration
	MaxWait      time.Duration
}

// JobSpec is the validated, normalized representation of user intent.
// A JobSpec is immutable once built; re-submission requires a new JobSpec.
type JobSpec struct {
	JobName           string
	TrainingImage     string
	RoleARN           string
	InstanceType      string
	InstanceCount     int
	VolumeSizeGB      int
	MaxRuntimeSeconds int
	InputChannels     []InputChannel
	OutputPath        string
	HyperParameters   map[string]string
	Environment       map[string]string
	VPC               *VPCConfig
	Tags              map[string]string
	OutputQueries     map[string]string
	Wait              WaitPolicy
}

// JobHandle identifies a submitted remote training job. Exactly one handle
// exists per run, from submission until the run ends.
type JobHandle struct {
	Name string
	ARN  string
}

// JobStatus is a point-in-time snapshot of a remote training job. Each poll
// produces a fresh snapshot; snapshots are never mutated.
type JobStatus struct {
	State           TrainingJobState
	SecondaryStatus string
	FailureReason   string
	ArtifactsURI    string
	CreatedAt       *time.Time
	StartedAt       *time.Time
	EndedAt         *time.Time
}

// RunOutcome is the terminal record of one orchestration run. It is created
// exactly once, when the run ends.
type RunOutcome struct {
	RunID         string
	Handle        JobHandle
	FinalState    TrainingJobState
	ArtifactsURI  string
	FailureReason string
	Elapsed       time.Duration
	TimedOut      bool
	Err           error
}

// ExitCode maps the outcome to the process exit taxonomy:
// 0 success, 1 remote or polling failure, 2 timeout while waiting.
func (o *RunOutcome) ExitCode() int {
	switch {
	case o.TimedOut:
		return ExitTimeout
	case o.Err != nil:
		return ExitFailure
	default:
		return ExitSuccess
	}
}
