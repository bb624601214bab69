package optimizer

import (
	"context"
	"math"
	"time"

	"github.com/rsrini3/prompt-optimizer/config"
	"github.com/rsrini3/prompt-optimizer/internal/logging"
	"github.com/rsrini3/prompt-optimizer/llm"
)

const tokensPerPriceUnit = 1000.0

// Evaluator tests prompt variants against a completion provider and scores
// the responses. The provider client, pricing and logger are injected at
// construction.
type Evaluator struct {
	llm             llm.LLM
	logger          logging.Logger
	inputTokenRate  float64 // USD per 1K input tokens
	outputTokenRate float64 // USD per 1K output tokens
}

// NewEvaluator creates an evaluator using the client and the pricing from
// the config.
func NewEvaluator(client llm.LLM, cfg *config.Config, logger logging.Logger) *Evaluator {
	return &Evaluator{
		llm:             client,
		logger:          logger,
		inputTokenRate:  cfg.InputTokenRate,
		outputTokenRate: cfg.OutputTokenRate,
	}
}

// EvaluateVariant sends one variant to the provider and returns its outcome.
// Any provider failure is captured in the outcome rather than returned: a
// failed variant must never abort its siblings.
func (e *Evaluator) EvaluateVariant(ctx context.Context, variant PromptVariant) EvaluationOutcome {
	start := time.Now()

	resp, err := e.llm.Generate(ctx, variant.Prompt)
	if err != nil {
		e.logger.Warn("Variant evaluation failed", "technique", variant.Technique, "error", err)
		return EvaluationOutcome{
			Success: false,
			Error:   err.Error(),
			Metrics: Metrics{Technique: variant.Name},
		}
	}

	executionTime := roundTo(time.Since(start).Seconds(), 2)
	usage := resp.Usage
	cost := roundTo(
		float64(usage.InputTokens)*e.inputTokenRate/tokensPerPriceUnit+
			float64(usage.OutputTokens)*e.outputTokenRate/tokensPerPriceUnit, 6)

	scores := scoreResponse(resp.Text, variant.Prompt)

	outcome := EvaluationOutcome{
		Success:  true,
		Response: resp.Text,
		Scores:   scores,
		Metrics: Metrics{
			ExecutionTime: executionTime,
			InputTokens:   usage.InputTokens,
			OutputTokens:  usage.OutputTokens,
			TotalTokens:   usage.TotalTokens,
			CostUSD:       cost,
			Technique:     variant.Name,
		},
		OverallScore: overallScore(scores),
	}

	if err := outcome.Validate(); err != nil {
		e.logger.Error("Outcome failed validation", "technique", variant.Technique, "error", err)
		return EvaluationOutcome{
			Success: false,
			Error:   err.Error(),
			Metrics: Metrics{Technique: variant.Name},
		}
	}

	e.logger.Info("Variant evaluated",
		"technique", variant.Technique,
		"overall_score", outcome.OverallScore,
		"cost_usd", cost,
		"execution_time", executionTime)

	return outcome
}

// EvaluateAll evaluates every variant sequentially in the fixed technique
// order and derives the summary. The best variant is the highest overall
// score among successful outcomes, ties broken by generation order; when
// every variant fails there is no winner and BestVariant stays empty.
func (e *Evaluator) EvaluateAll(ctx context.Context, variants map[Technique]PromptVariant) *EvaluationResult {
	outcomes := make(map[Technique]EvaluationOutcome, len(variants))
	var totalCost float64
	var bestVariant Technique
	var bestScore float64

	for _, technique := range Techniques {
		variant, ok := variants[technique]
		if !ok {
			continue
		}

		e.logger.Debug("Evaluating variant", "technique", technique)
		outcome := e.EvaluateVariant(ctx, variant)
		outcomes[technique] = outcome

		if !outcome.Success {
			continue
		}

		totalCost += outcome.Metrics.CostUSD
		if bestVariant == "" || outcome.OverallScore > bestScore {
			bestVariant = technique
			bestScore = outcome.OverallScore
		}
	}

	return &EvaluationResult{
		Outcomes: outcomes,
		Summary: EvaluationSummary{
			TotalCostUSD: roundTo(totalCost, 6),
			BestVariant:  bestVariant,
			BestScore:    bestScore,
		},
	}
}

// overallScore is the arithmetic mean of the named scores, rounded to one
// decimal place.
func overallScore(scores map[string]float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, score := range scores {
		sum += score
	}
	return roundTo(sum/float64(len(scores)), 1)
}

func roundTo(value float64, decimals int) float64 {
	factor := math.Pow(10, float64(decimals))
	return math.Round(value*factor) / factor
}
