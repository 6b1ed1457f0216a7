// Package ghactions implements the pipeline output surface for GitHub
// Actions runners: the GITHUB_OUTPUT file, the step summary, and workflow
// commands on stdout.
package ghactions

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/mlops-actions/sagemaker-training-action/config"
	"github.com/mlops-actions/sagemaker-training-action/internal/core"
)

// Sink writes outputs and diagnostics for a GitHub Actions step. When the
// runner provides no GITHUB_OUTPUT file, outputs fall back to the legacy
// set-output workflow command so older runners still see them.
type Sink struct {
	mu          sync.Mutex
	out         io.Writer
	outputPath  string
	summaryPath string
}

var _ core.OutputSink = (*Sink)(nil)

// New builds a Sink from the runner-provided environment. Workflow commands
// go to stdout, where the runner intercepts them.
func New(cfg config.GitHubConfig) *Sink {
	return &Sink{
		out:         os.Stdout,
		outputPath:  cfg.OutputPath,
		summaryPath: cfg.SummaryPath,
	}
}

// Set publishes one named output value.
func (s *Sink) Set(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outputPath == "" {
		s.command(fmt.Sprintf("set-output name=%s", name), escapeData(value))
		return nil
	}
	return appendFile(s.outputPath, formatOutput(name, value))
}

// Mask registers a sensitive value so the runner redacts it from logs.
func (s *Sink) Mask(value string) {
	if value == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.command("add-mask", escapeData(value))
}

// Warning emits a warning annotation.
func (s *Sink) Warning(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.command("warning", escapeData(fmt.Sprintf(format, args...)))
}

// Error emits an error annotation.
func (s *Sink) Error(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.command("error", escapeData(fmt.Sprintf(format, args...)))
}

// Summary appends rendered markdown to the step summary. Without a summary
// file the markdown is dropped silently; it is presentation only.
func (s *Sink) Summary(markdown string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.summaryPath == "" {
		return nil
	}
	if !strings.HasSuffix(markdown, "\n") {
		markdown += "\n"
	}
	return appendFile(s.summaryPath, markdown)
}

// command writes one workflow command line: "::name::message".
func (s *Sink) command(name, message string) {
	fmt.Fprintf(s.out, "::%s::%s\n", name, message)
}

// formatOutput renders one GITHUB_OUTPUT entry. Multiline values use the
// heredoc form with a collision-proof delimiter, matching the runner's
// documented format.
func formatOutput(name, value string) string {
	if !strings.ContainsAny(value, "\r\n") {
		return fmt.Sprintf("%s=%s\n", name, value)
	}
	delim := "ghadelimiter_" + uuid.NewString()
	return fmt.Sprintf("%s<<%s\n%s\n%s\n", name, delim, value, delim)
}

func appendFile(path, data string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	if _, err := f.WriteString(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// escapeData encodes the characters that terminate or corrupt a workflow
// command message.
func escapeData(v string) string {
	r := strings.NewReplacer("%", "%25", "\r", "%0D", "\n", "%0A")
	return r.Replace(v)
}
