// Package util hosts shared formatting helpers used across the action's
// output surfaces.
package util

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// FormatDuration renders a duration for human display: "1h 1m 1s",
// "1m 30s", or "30s". Sub-second precision is dropped.
func FormatDuration(d time.Duration) string {
	total := int(d.Seconds())
	if total < 0 {
		total = 0
	}
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

const (
	maxJobNameLength = 63
	fallbackJobName  = "sagemaker-job"
)

var invalidJobNameChars = regexp.MustCompile(`[^a-zA-Z0-9-]+`)

// SanitizeJobName rewrites an arbitrary string into a valid SageMaker
// training job name: invalid characters collapse to hyphens, leading and
// trailing hyphens are stripped, and the result is truncated to 63
// characters. An empty result falls back to "sagemaker-job".
func SanitizeJobName(name string) string {
	s := invalidJobNameChars.ReplaceAllString(name, "-")
	s = strings.Trim(s, "-")
	if len(s) > maxJobNameLength {
		s = strings.TrimRight(s[:maxJobNameLength], "-")
	}
	if s == "" {
		return fallbackJobName
	}
	return s
}
