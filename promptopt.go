// Package promptopt rewrites a prompt into five alternative phrasings, each
// applying a known prompt-engineering technique, and optionally evaluates
// every variant against a completion provider to find the one that performs
// best.
package promptopt

import (
	"context"
	"fmt"
	"strings"

	"github.com/rsrini3/prompt-optimizer/config"
	"github.com/rsrini3/prompt-optimizer/internal/logging"
	"github.com/rsrini3/prompt-optimizer/llm"
	"github.com/rsrini3/prompt-optimizer/optimizer"
	"github.com/rsrini3/prompt-optimizer/providers"
)

// The following types are re-exported from the optimizer package to provide
// a cleaner API surface.
type (
	// Technique identifies one of the five fixed prompt-engineering techniques.
	Technique = optimizer.Technique

	// PromptVariant is the output of applying one technique to a prompt.
	PromptVariant = optimizer.PromptVariant

	// EvaluationOutcome is the per-variant evaluation result, success or failure.
	EvaluationOutcome = optimizer.EvaluationOutcome

	// EvaluationSummary aggregates total cost and the best-scoring variant.
	EvaluationSummary = optimizer.EvaluationSummary

	// ConfigOption configures the optimizer at construction time.
	ConfigOption = config.ConfigOption
)

// GenerateVariants re-exports variant generation for callers that only need
// the templated prompts.
var GenerateVariants = optimizer.GenerateVariants

// Result is the outcome of one GenerateAndEvaluate call. Outcomes and
// Summary are nil when evaluation was not requested.
type Result struct {
	Variants map[Technique]PromptVariant
	Outcomes map[Technique]EvaluationOutcome
	Summary  *EvaluationSummary
}

// Optimizer wires variant generation and evaluation behind a single entry
// point.
type Optimizer struct {
	evaluator *optimizer.Evaluator
	config    *config.Config
	logger    logging.Logger
}

// New creates an Optimizer from environment configuration plus the given
// options.
func New(opts ...ConfigOption) (*Optimizer, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	config.ApplyOptions(cfg, opts...)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.NewLogger(cfg.LogLevel)
	logger.Debug("Creating optimizer", "provider", cfg.Provider, "model", cfg.Model)

	registry := providers.NewProviderRegistry()
	client, err := llm.NewLLM(cfg, logger, registry)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	return &Optimizer{
		evaluator: optimizer.NewEvaluator(client, cfg, logger),
		config:    cfg,
		logger:    logger,
	}, nil
}

// GenerateAndEvaluate generates the five variants of originalPrompt and,
// when runEvaluation is set, evaluates each one and summarizes the pass.
// Prompts shorter than the configured minimum are rejected before any
// provider call is made; provider failures during evaluation are isolated
// per variant and never returned as an error here.
func (o *Optimizer) GenerateAndEvaluate(ctx context.Context, originalPrompt string, runEvaluation bool) (*Result, error) {
	trimmed := strings.TrimSpace(originalPrompt)
	if len(trimmed) < o.config.MinPromptLength {
		return nil, llm.NewLLMError(llm.ErrorTypeInvalidInput,
			fmt.Sprintf("prompt must be at least %d characters", o.config.MinPromptLength), nil)
	}

	variants := optimizer.GenerateVariants(originalPrompt)
	result := &Result{Variants: variants}

	if !runEvaluation {
		return result, nil
	}

	o.logger.Info("Evaluating variants", "count", len(variants))
	evaluation := o.evaluator.EvaluateAll(ctx, variants)
	result.Outcomes = evaluation.Outcomes
	result.Summary = &evaluation.Summary

	return result, nil
}
