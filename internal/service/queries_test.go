package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryEvaluator_Validate(t *testing.T) {
	e := NewQueryEvaluator()

	assert.NoError(t, e.Validate("AlgorithmSpecification.TrainingImage"))
	assert.NoError(t, e.Validate("Tags[?Key=='team'].Value | [0]"))
	assert.Error(t, e.Validate("[invalid"))
	assert.Error(t, e.Validate(""))
	assert.Error(t, e.Validate("   "))
}

func TestQueryEvaluator_Evaluate(t *testing.T) {
	e := NewQueryEvaluator()
	doc := map[string]any{
		"ResourceConfig": map[string]any{
			"InstanceType":  "ml.m5.large",
			"InstanceCount": 2,
		},
		"Tags": []any{
			map[string]any{"Key": "team", "Value": "ml-platform"},
		},
	}

	v, err := e.Evaluate("ResourceConfig.InstanceType", doc)
	require.NoError(t, err)
	assert.Equal(t, "ml.m5.large", v)

	v, err = e.Evaluate("Tags[?Key=='team'].Value | [0]", doc)
	require.NoError(t, err)
	assert.Equal(t, "ml-platform", v)

	v, err = e.Evaluate("Missing.Path", doc)
	require.NoError(t, err)
	assert.Nil(t, v)
}
