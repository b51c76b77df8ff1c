package llm

import (
	"context"

	"github.com/tessellate-io/promptql/internal/services/llm/models"
)

// Service defines the interface for upstream language model operations
type Service interface {
	// CreateChatCompletion sends a chat conversation to the provider and
	// returns the assistant's reply.
	CreateChatCompletion(ctx context.Context, req models.ChatRequest) (*models.ChatResult, error)

	// CreateCompletion sends a text prompt to the provider and returns
	// the generated continuation.
	CreateCompletion(ctx context.Context, req models.CompletionRequest) (*models.CompletionResult, error)

	// ListModels returns the models the provider currently advertises.
	ListModels(ctx context.Context) ([]models.ModelInfo, error)
}
