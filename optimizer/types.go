// File: optimizer/types.go

package optimizer

import (
	"github.com/go-playground/validator/v10"
)

// Metrics records the measured cost of evaluating one variant.
type Metrics struct {
	ExecutionTime float64 `json:"execution_time"` // Wall-clock seconds, rounded to 2 decimals
	InputTokens   int     `json:"input_tokens"`
	OutputTokens  int     `json:"output_tokens"`
	TotalTokens   int     `json:"total_tokens"`
	CostUSD       float64 `json:"cost_usd"` // Rounded to 6 decimals
	Technique     string  `json:"technique"`
}

// EvaluationOutcome is the result of evaluating one variant, success or
// failure. On failure all numeric fields are zero and OverallScore is 0 for
// ranking purposes. Never mutated after creation.
type EvaluationOutcome struct {
	Success      bool               `json:"success"`
	Response     string             `json:"response,omitempty"`
	Scores       map[string]float64 `json:"scores,omitempty" validate:"dive,min=0,max=10"`
	Metrics      Metrics            `json:"metrics"`
	OverallScore float64            `json:"overall_score" validate:"min=0,max=10"`
	Error        string             `json:"error,omitempty"`
}

// EvaluationSummary aggregates a full evaluation pass. It is derived,
// recomputed fresh on every pass and never persisted.
type EvaluationSummary struct {
	// TotalCostUSD sums the costs of the successful outcomes; failures
	// contribute 0.
	TotalCostUSD float64 `json:"total_cost_usd"`

	// BestVariant is the highest-scoring technique, ties broken by
	// generation order. Empty when no variant succeeded.
	BestVariant Technique `json:"best_variant"`
	BestScore   float64   `json:"best_score"`
}

// EvaluationResult holds the per-technique outcomes of one pass plus the
// derived summary.
type EvaluationResult struct {
	Outcomes map[Technique]EvaluationOutcome `json:"results"`
	Summary  EvaluationSummary               `json:"summary"`
}

var validate = validator.New()

// Validate checks the outcome's scores against their declared bounds.
func (o *EvaluationOutcome) Validate() error {
	return validate.Struct(o)
}
