package optimizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wordsOf builds a response with exactly n words and no clarity indicators.
func wordsOf(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = "word"
	}
	return strings.Join(words, " ")
}

func TestQualityScore(t *testing.T) {
	testCases := []struct {
		wordCount int
		expected  float64
	}{
		{10, 6.0},
		{50, 9.0},
		{300, 9.0},
		{301, 7.5},
	}

	for _, tc := range testCases {
		scores := scoreResponse(wordsOf(tc.wordCount), "some test prompt here")
		assert.Equal(t, tc.expected, scores[ScoreQuality], "word count %d", tc.wordCount)
	}
}

func TestClarityScore(t *testing.T) {
	t.Run("six indicators cap at 10", func(t *testing.T) {
		// Contains "first", "second", "example", ":", "1." and "2.";
		// 6 of 7 indicators, and 6.0 + 6*0.8 caps at 10.0.
		response := "First, consider the basics. Second, for example: 1. one thing 2. another thing."
		scores := scoreResponse(response, "prompt")
		assert.Equal(t, 10.0, scores[ScoreClarity])
	})

	t.Run("no indicators gives the base", func(t *testing.T) {
		scores := scoreResponse("plain text with no structure at all", "prompt")
		assert.Equal(t, 6.0, scores[ScoreClarity])
	})

	t.Run("repeat occurrences count once", func(t *testing.T) {
		scores := scoreResponse("first first first first", "prompt")
		assert.InDelta(t, 6.8, scores[ScoreClarity], 1e-9)
	})
}

func TestCompletenessScore(t *testing.T) {
	t.Run("short prompt divisor floored at 10", func(t *testing.T) {
		// 20 response words / max(2, 10) = 2.0 ratio; 5.0 + 2*2.0 = 9.0
		scores := scoreResponse(wordsOf(20), "two words")
		assert.InDelta(t, 9.0, scores[ScoreCompleteness], 1e-9)
	})

	t.Run("capped at 10", func(t *testing.T) {
		scores := scoreResponse(wordsOf(500), "short prompt")
		assert.Equal(t, 10.0, scores[ScoreCompleteness])
	})
}

func TestRelevanceIsPlaceholderConstant(t *testing.T) {
	scores := scoreResponse("any response", "any prompt")
	assert.Equal(t, 8.5, scores[ScoreRelevance])
}

func TestScoreResponseDeterministic(t *testing.T) {
	response := "First, an example: 1. machine learning uses data 2. models improve over time."
	prompt := "Explain machine learning to a beginner"

	first := scoreResponse(response, prompt)
	second := scoreResponse(response, prompt)

	assert.Equal(t, first, second)
}

func TestScoresWithinBounds(t *testing.T) {
	responses := []string{
		"",
		"one",
		wordsOf(49),
		wordsOf(50),
		wordsOf(300),
		wordsOf(1000),
		"First: 1. - second example 2.",
	}

	for _, response := range responses {
		scores := scoreResponse(response, "a reasonably sized prompt for testing purposes")
		require.Len(t, scores, 4)
		for name, score := range scores {
			assert.GreaterOrEqual(t, score, 0.0, "%s for %q", name, response)
			assert.LessOrEqual(t, score, 10.0, "%s for %q", name, response)
		}
	}
}
