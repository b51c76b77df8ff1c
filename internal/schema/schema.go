// Package schema defines the gateway's GraphQL contract: the exposed
// types, the query and mutation roots, and the resolvers that translate
// GraphQL arguments into provider service calls.
package schema

import "github.com/graphql-go/graphql"

// New builds the executable GraphQL schema.
func New() (graphql.Schema, error) {
	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"health": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "Liveness check answered by the gateway itself",
				Resolve:     resolveHealth,
			},
			"models": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(modelType))),
				Description: "Models currently advertised by the upstream provider",
				Resolve:     resolveModels,
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"chat": &graphql.Field{
				Type:        graphql.NewNonNull(chatResponseType),
				Description: "Forward a chat conversation to the upstream provider",
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(chatInputType),
					},
				},
				Resolve: resolveChat,
			},
			"completion": &graphql.Field{
				Type:        graphql.NewNonNull(completionResponseType),
				Description: "Forward a text prompt to the upstream provider",
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{
						Type: graphql.NewNonNull(completionInputType),
					},
				},
				Resolve: resolveCompletion,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}
