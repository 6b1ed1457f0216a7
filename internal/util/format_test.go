package util

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{name: "seconds only", d: 30 * time.Second, want: "30s"},
		{name: "minutes and seconds", d: 90 * time.Second, want: "1m 30s"},
		{name: "hours minutes seconds", d: 3661 * time.Second, want: "1h 1m 1s"},
		{name: "whole hours keep zero parts", d: 7200 * time.Second, want: "2h 0m 0s"},
		{name: "zero", d: 0, want: "0s"},
		{name: "negative clamps to zero", d: -time.Second, want: "0s"},
		{name: "sub-second precision dropped", d: 1500 * time.Millisecond, want: "1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.d))
		})
	}
}

func TestSanitizeJobName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "valid name unchanged", input: "my-training-job", want: "my-training-job"},
		{name: "invalid characters collapse to hyphens", input: "my_training job!", want: "my-training-job"},
		{name: "leading and trailing hyphens stripped", input: "--job--", want: "job"},
		{name: "empty falls back", input: "", want: "sagemaker-job"},
		{name: "only invalid characters falls back", input: "___", want: "sagemaker-job"},
		{name: "truncated to 63 characters", input: strings.Repeat("a", 100), want: strings.Repeat("a", 63)},
		{name: "mixed case preserved", input: "MyJob-123", want: "MyJob-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeJobName(tt.input))
		})
	}
}
