package promptopt

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rsrini3/prompt-optimizer/providers"
)

func TestFormatVariants(t *testing.T) {
	opt := newTestOptimizer(respondWith("response"))

	result, err := opt.GenerateAndEvaluate(context.Background(), "Write a blog post about AI", false)
	require.NoError(t, err)

	out := FormatVariants(result)
	assert.Contains(t, out, "## Generated Prompt Variants")
	assert.Contains(t, out, "### 1. Few Shot")
	assert.Contains(t, out, "### 5. Concise")
	assert.Contains(t, out, "Write a blog post about AI")
	assert.Contains(t, out, "Provides examples to guide the model's response pattern")
}

func TestFormatResults(t *testing.T) {
	longResponse := strings.Repeat("structured response text ", 20)
	opt := newTestOptimizer(respondWith(longResponse))

	result, err := opt.GenerateAndEvaluate(context.Background(), "Write a blog post about AI", true)
	require.NoError(t, err)

	out := FormatResults(result)
	assert.Contains(t, out, "## Evaluation Results")
	assert.Contains(t, out, "Overall Score:")
	assert.Contains(t, out, "- Quality:")
	assert.Contains(t, out, "- Tokens: 150")
	assert.Contains(t, out, "...", "long responses are truncated to a preview")
}

func TestFormatResultsEvaluationSkipped(t *testing.T) {
	opt := newTestOptimizer(respondWith("response"))

	result, err := opt.GenerateAndEvaluate(context.Background(), "Write a blog post about AI", false)
	require.NoError(t, err)

	assert.Contains(t, FormatResults(result), "Evaluation skipped")
}

func TestFormatResultsListsFailures(t *testing.T) {
	opt := newTestOptimizer(func(_ context.Context, prompt string) (*providers.Response, error) {
		if strings.Contains(prompt, "step-by-step") {
			return nil, errors.New("timed out")
		}
		return &providers.Response{Text: "fine response", Usage: providers.NewUsage(10, 10)}, nil
	})

	result, err := opt.GenerateAndEvaluate(context.Background(), "Write a blog post about AI", true)
	require.NoError(t, err)

	out := FormatResults(result)
	assert.Contains(t, out, "Chain Of Thought (failed)")
	assert.Contains(t, out, "timed out")
}

func TestFormatSummary(t *testing.T) {
	t.Run("names the best variant", func(t *testing.T) {
		opt := newTestOptimizer(respondWith("a scored response"))

		result, err := opt.GenerateAndEvaluate(context.Background(), "Write a blog post about AI", true)
		require.NoError(t, err)

		out := FormatSummary(result)
		assert.Contains(t, out, "## Cost Summary")
		assert.Contains(t, out, "**Total Cost:**")
		assert.Contains(t, out, "**Best Performing Variant:**")
	})

	t.Run("reports no winner when everything fails", func(t *testing.T) {
		opt := newTestOptimizer(func(_ context.Context, _ string) (*providers.Response, error) {
			return nil, errors.New("api unreachable")
		})

		result, err := opt.GenerateAndEvaluate(context.Background(), "Write a blog post about AI", true)
		require.NoError(t, err)

		assert.Contains(t, FormatSummary(result), "no successful evaluations")
	})

	t.Run("empty without evaluation", func(t *testing.T) {
		opt := newTestOptimizer(respondWith("response"))

		result, err := opt.GenerateAndEvaluate(context.Background(), "Write a blog post about AI", false)
		require.NoError(t, err)

		assert.Empty(t, FormatSummary(result))
	})
}
