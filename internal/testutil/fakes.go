package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sagemaker"

	"github.com/mlops-actions/sagemaker-training-action/internal/domain/model"
)

// DescribeResult is one scripted answer from ScriptedTrainingAPI.
type DescribeResult struct {
	Status *model.JobStatus
	Err    error
}

// ScriptedTrainingAPI implements core.TrainingJobAPI with pre-scripted
// responses, in order. When the script runs out the last entry repeats, so
// a terminal status can simply be placed last.
type ScriptedTrainingAPI struct {
	mu sync.Mutex

	CreateHandle model.JobHandle
	CreateErr    error
	Describes    []DescribeResult

	CreateCalls   int
	DescribeCalls int
	LastRequest   *sagemaker.CreateTrainingJobInput
}

// Status is a convenience constructor for a scripted status entry.
func Status(state model.TrainingJobState) DescribeResult {
	return DescribeResult{Status: &model.JobStatus{State: state}}
}

func (f *ScriptedTrainingAPI) CreateTrainingJob(_ context.Context, in *sagemaker.CreateTrainingJobInput) (model.JobHandle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.CreateCalls++
	f.LastRequest = in
	if f.CreateErr != nil {
		return model.JobHandle{}, f.CreateErr
	}
	if f.CreateHandle == (model.JobHandle{}) {
		name := aws.ToString(in.TrainingJobName)
		return model.JobHandle{
			Name: name,
			ARN:  "arn:aws:sagemaker:us-east-1:123456789012:training-job/" + name,
		}, nil
	}
	return f.CreateHandle, nil
}

func (f *ScriptedTrainingAPI) DescribeTrainingJob(context.Context, string) (*model.JobStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.Describes) == 0 {
		return &model.JobStatus{State: model.StateInProgress}, nil
	}
	idx := f.DescribeCalls
	if idx >= len(f.Describes) {
		idx = len(f.Describes) - 1
	}
	f.DescribeCalls++
	r := f.Describes[idx]
	return r.Status, r.Err
}

// RecordingSink implements core.OutputSink, capturing everything published
// so tests can assert on it.
type RecordingSink struct {
	mu sync.Mutex

	Outputs   map[string]string
	Masked    []string
	Warnings  []string
	Errors    []string
	Summaries []string

	// SetErr, when non-nil, is returned from every Set call.
	SetErr error
}

// NewRecordingSink returns an empty RecordingSink.
func NewRecordingSink() *RecordingSink {
	return &RecordingSink{Outputs: make(map[string]string)}
}

func (s *RecordingSink) Set(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SetErr != nil {
		return s.SetErr
	}
	s.Outputs[name] = value
	return nil
}

func (s *RecordingSink) Mask(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Masked = append(s.Masked, value)
}

func (s *RecordingSink) Warning(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Warnings = append(s.Warnings, fmt.Sprintf(format, args...))
}

func (s *RecordingSink) Error(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Errors = append(s.Errors, fmt.Sprintf(format, args...))
}

func (s *RecordingSink) Summary(markdown string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Summaries = append(s.Summaries, markdown)
	return nil
}
