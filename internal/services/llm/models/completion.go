package models

// CompletionRequest describes a text completion call. Optional fields
// follow the same pointer convention as ChatRequest.
type CompletionRequest struct {
	Prompt      string   `json:"prompt"`
	Model       string   `json:"model,omitempty"`
	MaxTokens   *int     `json:"maxTokens,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
}

// CompletionResult is the normalised outcome of a text completion call.
// Text may be empty when the provider returns an empty choice.
type CompletionResult struct {
	Text  string `json:"text"`
	Model string `json:"model"`
	Usage *Usage `json:"usage,omitempty"`
}
