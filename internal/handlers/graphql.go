package handlers

import (
	"fmt"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
	"github.com/rs/zerolog/log"

	"github.com/tessellate-io/promptql/internal/config"
	"github.com/tessellate-io/promptql/internal/schema"
	"github.com/tessellate-io/promptql/internal/services/llm"
	"github.com/tessellate-io/promptql/pkg/httpext"
)

// AdapterFactory builds the provider service used for a single request.
type AdapterFactory func() (llm.Service, error)

// GraphQLConfig configures the GraphQL edge handler.
type GraphQLConfig struct {
	Schema     graphql.Schema
	Playground bool

	// NewService overrides how the per-request provider service is
	// built. Nil means reading the credential from the environment.
	NewService AdapterFactory
}

// GraphQL bridges inbound HTTP to GraphQL execution. Each request gets a
// freshly built provider service so credential problems surface as
// request errors rather than process crashes.
type GraphQL struct {
	delegate   *handler.Handler
	newService AdapterFactory
}

// NewGraphQL builds the edge handler around the given schema.
func NewGraphQL(cfg GraphQLConfig) *GraphQL {
	newService := cfg.NewService
	if newService == nil {
		newService = defaultAdapterFactory
	}

	return &GraphQL{
		delegate: handler.New(&handler.Config{
			Schema:     &cfg.Schema,
			Pretty:     true,
			Playground: cfg.Playground,
		}),
		newService: newService,
	}
}

func defaultAdapterFactory() (llm.Service, error) {
	cfg, err := config.OpenAI()
	if err != nil {
		return nil, err
	}

	return llm.NewService(cfg.APIKey)
}

func (h *GraphQL) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Msg("Recovered from panic in GraphQL handler")
			httpext.JsonError(w, fmt.Sprintf("%v", rec), http.StatusInternalServerError)
		}
	}()

	service, err := h.newService()
	if err != nil {
		log.Error().Err(err).Msg("Failed to construct provider service")
		httpext.JsonError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	h.delegate.ContextHandler(schema.WithService(r.Context(), service), w, r)
}
