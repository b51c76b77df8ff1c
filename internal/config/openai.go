package config

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// use a single instance of Validate, it caches struct info
var validate = validator.New(validator.WithRequiredStructEnabled())

// OpenAIConfig carries the provider credential for a single request.
type OpenAIConfig struct {
	APIKey string `validate:"required"`
}

// OpenAI reads the provider credential from the environment. The key is
// looked up per call so a process started without it can begin serving
// once the variable appears; callers treat an error as a request-scoped
// configuration failure, not a startup one.
func OpenAI() (*OpenAIConfig, error) {
	cfg := &OpenAIConfig{
		APIKey: GetEnvOrDefault("OPENAI_KEY", ""),
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, errors.New("OPENAI_KEY environment variable not set")
	}

	return cfg, nil
}
