package providers

// Response represents a single-turn completion from a provider. It carries
// the response text and optional token usage information.
type Response struct {
	Text  string
	Usage *Usage
}

func (r *Response) String() string {
	return r.Text
}

// Usage represents the token usage reported by a provider for one call.
type Usage struct {
	InputTokens  int // Prompt tokens consumed by the call
	OutputTokens int // Completion tokens generated
	TotalTokens  int // Sum of input and output tokens
}

func NewUsage(inputTokens, outputTokens int) *Usage {
	return &Usage{
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		TotalTokens:  inputTokens + outputTokens,
	}
}
