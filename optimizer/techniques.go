// Package optimizer generates improved variants of a prompt using known
// prompt-engineering techniques and evaluates them against a completion
// provider.
package optimizer

import (
	"fmt"
	"strings"
)

// Technique identifies one of the five fixed prompt-engineering techniques.
// The set is closed: each technique has exactly one generator and nothing
// here is runtime-extensible.
type Technique string

const (
	TechniqueFewShot          Technique = "few_shot"
	TechniqueChainOfThought   Technique = "chain_of_thought"
	TechniqueStructuredOutput Technique = "structured_output"
	TechniqueRoleBased        Technique = "role_based"
	TechniqueConcise          Technique = "concise"
)

// Techniques lists all techniques in their fixed generation order.
var Techniques = []Technique{
	TechniqueFewShot,
	TechniqueChainOfThought,
	TechniqueStructuredOutput,
	TechniqueRoleBased,
	TechniqueConcise,
}

var techniqueDescriptions = map[Technique]string{
	TechniqueFewShot:          "Provides examples to guide the model's response pattern",
	TechniqueChainOfThought:   "Encourages step-by-step reasoning before answering",
	TechniqueStructuredOutput: "Requests organized, formatted responses",
	TechniqueRoleBased:        "Assigns expert persona for authoritative answers",
	TechniqueConcise:          "Optimizes for brevity and directness",
}

// DisplayName returns the human-readable name of the technique,
// e.g. "chain_of_thought" becomes "Chain Of Thought".
func (t Technique) DisplayName() string {
	words := strings.Split(string(t), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Description returns the one-line description of the technique.
func (t Technique) Description() string {
	return techniqueDescriptions[t]
}

// PromptVariant is the result of applying one technique to an original
// prompt. It is immutable after creation.
type PromptVariant struct {
	Technique   Technique `json:"technique_id"`
	Name        string    `json:"technique"`
	Description string    `json:"description"`
	Prompt      string    `json:"prompt"`
}

// GenerateVariants applies each of the five techniques to the original
// prompt and returns the variants keyed by technique. It is a pure function:
// every generated prompt contains the original text verbatim, only wrapped.
// Input validation is the caller's responsibility.
func GenerateVariants(original string) map[Technique]PromptVariant {
	variants := make(map[Technique]PromptVariant, len(Techniques))

	for _, technique := range Techniques {
		variants[technique] = PromptVariant{
			Technique:   technique,
			Name:        technique.DisplayName(),
			Description: technique.Description(),
			Prompt:      applyTechnique(technique, original),
		}
	}

	return variants
}

func applyTechnique(t Technique, prompt string) string {
	switch t {
	case TechniqueFewShot:
		return applyFewShot(prompt)
	case TechniqueChainOfThought:
		return applyChainOfThought(prompt)
	case TechniqueStructuredOutput:
		return applyStructuredOutput(prompt)
	case TechniqueRoleBased:
		return applyRoleBased(prompt)
	case TechniqueConcise:
		return applyConcise(prompt)
	default:
		return prompt
	}
}

// applyFewShot prepends two worked input/output example pairs.
func applyFewShot(prompt string) string {
	return fmt.Sprintf(`I'll show you some examples first, then you can apply the same pattern.

Example 1:
Input: Write a product description
Output: "Introducing the SmartWatch Pro - where cutting-edge technology meets timeless elegance..."

Example 2:
Input: Summarize this article
Output: "This article discusses three key points: 1) Market trends, 2) Consumer behavior, 3) Future predictions..."

Now, here's your task:
%s

Please follow the same detailed, structured approach shown in the examples above.`, prompt)
}

// applyChainOfThought appends a fixed 4-step reasoning instruction block.
func applyChainOfThought(prompt string) string {
	return fmt.Sprintf(`%s

Please think through this step-by-step:
1. First, analyze what the task is asking for
2. Then, identify the key components needed
3. Next, organize your thoughts logically
4. Finally, provide a comprehensive response

Walk me through your reasoning process before giving the final answer.`, prompt)
}

// applyStructuredOutput appends a fixed Overview/Key Points/Conclusion template.
func applyStructuredOutput(prompt string) string {
	return fmt.Sprintf(`%s

Please provide your response in the following structured format:

**Overview:**
[Brief summary]

**Key Points:**
- Point 1: [Details]
- Point 2: [Details]
- Point 3: [Details]

**Conclusion:**
[Final thoughts]

Ensure each section is clearly labeled and well-organized.`, prompt)
}

// applyRoleBased prepends an expert persona framing and appends the expected
// response qualities.
func applyRoleBased(prompt string) string {
	return fmt.Sprintf(`You are an expert professional with deep knowledge in this domain. You have years of experience and are known for providing insightful, accurate, and well-reasoned responses.

Task: %s

As an expert, please provide a thorough response that demonstrates:
- Deep understanding of the subject matter
- Practical, actionable insights
- Clear explanations that are easy to follow
- Professional-level detail and accuracy`, prompt)
}

// applyConcise appends a fixed instruction to answer directly and briefly.
func applyConcise(prompt string) string {
	return fmt.Sprintf(`%s

Be direct and concise. Provide only the most important information without unnecessary elaboration. Focus on clarity and brevity.`, prompt)
}
