package llm

import (
	"context"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/sashabaranov/go-openai"

	"github.com/tessellate-io/promptql/internal/services/llm/models"
)

// Defaults applied when a request leaves the corresponding field unset.
const (
	defaultChatModel       = openai.GPT3Dot5Turbo
	defaultCompletionModel = openai.GPT3Dot5TurboInstruct
	defaultTemperature     = 0.7
	defaultMaxTokens       = 1000
)

type serviceImpl struct {
	client *openai.Client
}

// NewService creates a provider-backed Service authenticated with apiKey.
func NewService(apiKey string) (Service, error) {
	if apiKey == "" {
		return nil, &ConfigurationError{Message: "OpenAI API key is required"}
	}

	return &serviceImpl{
		client: openai.NewClient(apiKey),
	}, nil
}

// NewServiceWithConfig creates a Service from a full client configuration,
// allowing the provider base URL to be overridden.
func NewServiceWithConfig(cfg openai.ClientConfig) Service {
	return &serviceImpl{
		client: openai.NewClientWithConfig(cfg),
	}
}

func (s *serviceImpl) CreateChatCompletion(ctx context.Context, req models.ChatRequest) (*models.ChatResult, error) {
	request := openai.ChatCompletionRequest{
		Model:       modelOrDefault(req.Model, defaultChatModel),
		Messages:    toProviderMessages(req.Messages),
		Temperature: temperatureOrDefault(req.Temperature),
		MaxTokens:   maxTokensOrDefault(req.MaxTokens),
	}

	log.Debug().
		Str("model", request.Model).
		Int("message_count", len(request.Messages)).
		Msg("Creating chat completion")

	response, err := s.client.CreateChatCompletion(ctx, request)
	if err != nil {
		log.Error().Err(err).Msg("Chat completion request failed")
		return nil, &UpstreamCallError{Operation: "Failed to generate chat response", Err: err}
	}

	if len(response.Choices) == 0 {
		log.Error().Str("model", request.Model).Msg("Chat completion response carried no choices")
		return nil, &UpstreamResponseError{Message: "No message in response"}
	}

	message := response.Choices[0].Message
	return &models.ChatResult{
		Message: models.Message{
			Role:    message.Role,
			Content: message.Content,
		},
		Model: response.Model,
		Usage: toUsage(response.Usage),
	}, nil
}

func (s *serviceImpl) CreateCompletion(ctx context.Context, req models.CompletionRequest) (*models.CompletionResult, error) {
	request := openai.CompletionRequest{
		Model:       modelOrDefault(req.Model, defaultCompletionModel),
		Prompt:      req.Prompt,
		MaxTokens:   maxTokensOrDefault(req.MaxTokens),
		Temperature: temperatureOrDefault(req.Temperature),
	}

	log.Debug().
		Str("model", request.Model).
		Msg("Creating completion")

	response, err := s.client.CreateCompletion(ctx, request)
	if err != nil {
		log.Error().Err(err).Msg("Completion request failed")
		return nil, &UpstreamCallError{Operation: "Failed to generate completion", Err: err}
	}

	if len(response.Choices) == 0 {
		log.Error().Str("model", request.Model).Msg("Completion response carried no choices")
		return nil, &UpstreamResponseError{Message: "No text in response"}
	}

	return &models.CompletionResult{
		Text:  response.Choices[0].Text,
		Model: response.Model,
		Usage: toUsage(response.Usage),
	}, nil
}

func (s *serviceImpl) ListModels(ctx context.Context) ([]models.ModelInfo, error) {
	log.Debug().Msg("Fetching model list")

	response, err := s.client.ListModels(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Model list request failed")
		return nil, &UpstreamCallError{Operation: "Failed to fetch models", Err: err}
	}

	infos := make([]models.ModelInfo, len(response.Models))
	for i, m := range response.Models {
		infos[i] = models.ModelInfo{
			ID:      m.ID,
			Object:  m.Object,
			Created: m.CreatedAt,
			OwnedBy: m.OwnedBy,
		}
	}

	return infos, nil
}

func modelOrDefault(model, fallback string) string {
	if model == "" {
		return fallback
	}
	return model
}

func toProviderMessages(messages []models.Message) []openai.ChatCompletionMessage {
	converted := make([]openai.ChatCompletionMessage, len(messages))
	for i, m := range messages {
		converted[i] = openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		}
	}
	return converted
}

// temperatureOrDefault maps an unset temperature to the default. The client
// library drops a zero-valued temperature from the request body, so an
// explicit zero is sent as the smallest nonzero float32 instead.
func temperatureOrDefault(temperature *float64) float32 {
	if temperature == nil {
		return defaultTemperature
	}
	if *temperature == 0 {
		return math.SmallestNonzeroFloat32
	}
	return float32(*temperature)
}

func maxTokensOrDefault(maxTokens *int) int {
	if maxTokens == nil {
		return defaultMaxTokens
	}
	return *maxTokens
}

// toUsage converts provider token counts, treating an all-zero block as
// absent so callers can render it as null.
func toUsage(usage openai.Usage) *models.Usage {
	if usage.PromptTokens == 0 && usage.CompletionTokens == 0 && usage.TotalTokens == 0 {
		return nil
	}

	return &models.Usage{
		PromptTokens:     usage.PromptTokens,
		CompletionTokens: usage.CompletionTokens,
		TotalTokens:      usage.TotalTokens,
	}
}
