package promptopt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rsrini3/prompt-optimizer/optimizer"
)

const responsePreviewLength = 200

// FormatVariants renders the generated variants as Markdown, one section
// per technique in generation order.
func FormatVariants(result *Result) string {
	var sb strings.Builder
	sb.WriteString("## Generated Prompt Variants\n\n")

	for i, technique := range orderedTechniques() {
		variant, ok := result.Variants[technique]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "### %d. %s\n", i+1, variant.Name)
		fmt.Fprintf(&sb, "*%s*\n\n", variant.Description)
		fmt.Fprintf(&sb, "```\n%s\n```\n\n", variant.Prompt)
		sb.WriteString("---\n\n")
	}

	return sb.String()
}

// FormatResults renders the evaluation outcomes as Markdown, ranked by
// overall score. Failed variants are listed after the successes with their
// error description.
func FormatResults(result *Result) string {
	if result.Outcomes == nil {
		return "*(Evaluation skipped)*\n"
	}

	var sb strings.Builder
	sb.WriteString("## Evaluation Results\n\n")

	ranked := rankedTechniques(result)
	rank := 0
	for _, technique := range ranked {
		outcome := result.Outcomes[technique]
		if !outcome.Success {
			continue
		}
		rank++

		fmt.Fprintf(&sb, "### %d. %s\n", rank, result.Variants[technique].Name)
		fmt.Fprintf(&sb, "**Overall Score: %.1f/10**\n\n", outcome.OverallScore)

		sb.WriteString("**Scores:**\n")
		for _, name := range scoreOrder {
			if score, ok := outcome.Scores[name]; ok {
				fmt.Fprintf(&sb, "- %s: %.1f/10\n", titleCase(name), score)
			}
		}

		sb.WriteString("\n**Metrics:**\n")
		fmt.Fprintf(&sb, "- Tokens: %d\n", outcome.Metrics.TotalTokens)
		fmt.Fprintf(&sb, "- Cost: $%.6f\n", outcome.Metrics.CostUSD)
		fmt.Fprintf(&sb, "- Time: %.2fs\n", outcome.Metrics.ExecutionTime)

		sb.WriteString("\n**Sample Response Preview:**\n")
		fmt.Fprintf(&sb, "```\n%s\n```\n\n", previewText(outcome.Response))
		sb.WriteString("---\n\n")
	}

	for _, technique := range orderedTechniques() {
		outcome, ok := result.Outcomes[technique]
		if !ok || outcome.Success {
			continue
		}
		fmt.Fprintf(&sb, "### %s (failed)\n", result.Variants[technique].Name)
		fmt.Fprintf(&sb, "Error: %s\n\n", outcome.Error)
	}

	return sb.String()
}

// FormatSummary renders the cost summary and the best-performing variant.
func FormatSummary(result *Result) string {
	if result.Summary == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("## Cost Summary\n\n")
	fmt.Fprintf(&sb, "**Total Cost:** $%.6f\n\n", result.Summary.TotalCostUSD)

	if result.Summary.BestVariant == "" {
		sb.WriteString("**Best Performing Variant:** no successful evaluations\n")
	} else {
		fmt.Fprintf(&sb, "**Best Performing Variant:** %s\n", result.Variants[result.Summary.BestVariant].Name)
		fmt.Fprintf(&sb, "**Best Score:** %.1f/10\n", result.Summary.BestScore)
	}

	sb.WriteString("\n*Note: Scores are heuristic-based. For production, use LLM-as-judge for more accurate evaluation.*\n")
	return sb.String()
}

var scoreOrder = []string{"quality", "clarity", "completeness", "relevance"}

func orderedTechniques() []Technique {
	return append([]Technique(nil), optimizer.Techniques...)
}

// rankedTechniques sorts techniques by overall score descending, keeping
// generation order for ties.
func rankedTechniques(result *Result) []Technique {
	ranked := orderedTechniques()
	sort.SliceStable(ranked, func(i, j int) bool {
		return result.Outcomes[ranked[i]].OverallScore > result.Outcomes[ranked[j]].OverallScore
	})
	return ranked
}

func previewText(response string) string {
	if len(response) > responsePreviewLength {
		return response[:responsePreviewLength] + "..."
	}
	return response
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
