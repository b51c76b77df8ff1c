package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/tessellate-io/promptql/internal/config"
	"github.com/tessellate-io/promptql/internal/handlers"
	"github.com/tessellate-io/promptql/internal/middleware"
	"github.com/tessellate-io/promptql/internal/schema"
)

func main() {
	cfg := config.Server()
	zerolog.SetGlobalLevel(cfg.LogLevel)

	router, err := setupRouter(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build router")
	}

	log.Info().
		Str("addr", cfg.Addr).
		Bool("playground", !cfg.IsProduction()).
		Msg("Starting GraphQL gateway")

	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

// setupRouter wires the schema, the edge handler and the middleware
// chain. OPTIONS must be registered on the route so the CORS middleware
// sees preflight requests.
func setupRouter(cfg *config.ServerConfig) (*mux.Router, error) {
	s, err := schema.New()
	if err != nil {
		return nil, err
	}

	graphqlHandler := handlers.NewGraphQL(handlers.GraphQLConfig{
		Schema:     s,
		Playground: !cfg.IsProduction(),
	})

	router := mux.NewRouter()
	router.Use(middleware.RequestID, middleware.RequestLogger, middleware.CORS)
	router.Handle("/graphql", graphqlHandler).
		Methods(http.MethodGet, http.MethodPost, http.MethodOptions)

	return router, nil
}
