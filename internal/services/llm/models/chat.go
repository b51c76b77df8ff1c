package models

// ChatRequest describes a chat completion call. Optional fields are
// pointers so an unset value can be told apart from an explicit zero;
// unset fields receive service defaults.
type ChatRequest struct {
	Messages    []Message `json:"messages"`
	Model       string    `json:"model,omitempty"`
	Temperature *float64  `json:"temperature,omitempty"`
	MaxTokens   *int      `json:"maxTokens,omitempty"`
}

// ChatResult is the normalised outcome of a chat completion call.
type ChatResult struct {
	Message Message `json:"message"`
	Model   string  `json:"model"`
	Usage   *Usage  `json:"usage,omitempty"`
}
