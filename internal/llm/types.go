package llm

// LLMRequest is one judging prompt. The scorer prompt is fully
// rendered before it reaches a provider; providers never template.
type LLMRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature float64
}

// LLMResponse is the provider-neutral model output. StopReason is
// passed through verbatim ("end_turn", "max_tokens", "stop", ...) so
// callers can detect truncated verdicts.
type LLMResponse struct {
	Content    string
	StopReason string
}
