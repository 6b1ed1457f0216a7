package service

import (
	"errors"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/mlops-actions/sagemaker-training-action/internal/core"
)

// QueryEvaluator implements core.QueryEvaluator using go-jmespath. Output
// queries are user-supplied expressions evaluated against the resolved job
// definition to surface extra pipeline outputs.
type QueryEvaluator struct{}

var _ core.QueryEvaluator = QueryEvaluator{}

// NewQueryEvaluator returns the JMESPath-backed evaluator.
func NewQueryEvaluator() QueryEvaluator { return QueryEvaluator{} }

// Validate checks that expr compiles as a JMESPath expression.
func (QueryEvaluator) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return errors.New("expression is empty")
	}
	_, err := jmespath.Compile(expr)
	return err
}

// Evaluate applies expr to data and returns the extracted value.
func (QueryEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}
