package optimizer

import (
	"strings"
)

// Score dimension names returned by scoreResponse.
const (
	ScoreQuality      = "quality"
	ScoreClarity      = "clarity"
	ScoreCompleteness = "completeness"
	ScoreRelevance    = "relevance"
)

// clarityIndicators are structural markers whose presence suggests an
// organized response. Each is checked once, case-insensitively.
var clarityIndicators = []string{"first", "second", "example", ":", "-", "1.", "2."}

// scoreResponse scores a response on four heuristic dimensions, each in
// [0, 10]. It is deterministic arithmetic over word counts and substring
// membership, not a semantic judgment; relevance in particular is a fixed
// placeholder.
func scoreResponse(response, prompt string) map[string]float64 {
	scores := make(map[string]float64, 4)

	// Quality: piecewise on response length
	wordCount := len(strings.Fields(response))
	switch {
	case wordCount >= 50 && wordCount <= 300:
		scores[ScoreQuality] = 9.0
	case wordCount < 50:
		scores[ScoreQuality] = 6.0
	default:
		scores[ScoreQuality] = 7.5
	}

	// Clarity: presence of structure indicators
	lowerResponse := strings.ToLower(response)
	clarityCount := 0
	for _, indicator := range clarityIndicators {
		if strings.Contains(lowerResponse, indicator) {
			clarityCount++
		}
	}
	scores[ScoreClarity] = min(10.0, 6.0+float64(clarityCount)*0.8)

	// Completeness: response length relative to prompt complexity. The
	// divisor is floored at 10 words so short prompts cannot blow it up.
	promptWords := len(strings.Fields(prompt))
	if promptWords < 10 {
		promptWords = 10
	}
	completenessRatio := float64(wordCount) / float64(promptWords)
	scores[ScoreCompleteness] = min(10.0, 5.0+completenessRatio*2)

	// Relevance: placeholder constant; real relevance would need semantic
	// similarity or an LLM judge.
	scores[ScoreRelevance] = 8.5

	return scores
}
