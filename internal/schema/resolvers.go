package schema

import (
	"errors"

	"github.com/graphql-go/graphql"

	"github.com/tessellate-io/promptql/internal/services/llm"
	"github.com/tessellate-io/promptql/internal/services/llm/models"
)

func resolveHealth(p graphql.ResolveParams) (interface{}, error) {
	return "OK", nil
}

func resolveModels(p graphql.ResolveParams) (interface{}, error) {
	service, err := serviceFromParams(p)
	if err != nil {
		return nil, err
	}

	return service.ListModels(p.Context)
}

func resolveChat(p graphql.ResolveParams) (interface{}, error) {
	service, err := serviceFromParams(p)
	if err != nil {
		return nil, err
	}

	input, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return nil, errors.New("chat input is required")
	}

	return service.CreateChatCompletion(p.Context, chatRequestFromInput(input))
}

func resolveCompletion(p graphql.ResolveParams) (interface{}, error) {
	service, err := serviceFromParams(p)
	if err != nil {
		return nil, err
	}

	input, ok := p.Args["input"].(map[string]interface{})
	if !ok {
		return nil, errors.New("completion input is required")
	}

	return service.CreateCompletion(p.Context, completionRequestFromInput(input))
}

func serviceFromParams(p graphql.ResolveParams) (llm.Service, error) {
	service, ok := ServiceFrom(p.Context)
	if !ok {
		return nil, errors.New("llm service not configured")
	}
	return service, nil
}

func chatRequestFromInput(input map[string]interface{}) models.ChatRequest {
	req := models.ChatRequest{
		Model:       stringArg(input, "model"),
		Temperature: floatArg(input, "temperature"),
		MaxTokens:   intArg(input, "maxTokens"),
	}

	rawMessages, _ := input["messages"].([]interface{})
	req.Messages = make([]models.Message, 0, len(rawMessages))
	for _, raw := range rawMessages {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}
		req.Messages = append(req.Messages, models.Message{
			Role:    stringArg(entry, "role"),
			Content: stringArg(entry, "content"),
		})
	}

	return req
}

func completionRequestFromInput(input map[string]interface{}) models.CompletionRequest {
	return models.CompletionRequest{
		Prompt:      stringArg(input, "prompt"),
		Model:       stringArg(input, "model"),
		MaxTokens:   intArg(input, "maxTokens"),
		Temperature: floatArg(input, "temperature"),
	}
}

func stringArg(args map[string]interface{}, key string) string {
	if value, ok := args[key].(string); ok {
		return value
	}
	return ""
}

// floatArg reads an optional Float argument. Values arrive as float64 from
// JSON variables and may arrive as int when written inline in the query.
func floatArg(args map[string]interface{}, key string) *float64 {
	switch value := args[key].(type) {
	case float64:
		return &value
	case int:
		converted := float64(value)
		return &converted
	}
	return nil
}

// intArg reads an optional Int argument, accepting the float64 form JSON
// variables decode to.
func intArg(args map[string]interface{}, key string) *int {
	switch value := args[key].(type) {
	case int:
		return &value
	case float64:
		converted := int(value)
		return &converted
	}
	return nil
}
