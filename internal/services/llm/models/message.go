package models

// Chat message roles understood by the upstream provider.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single entry in a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
