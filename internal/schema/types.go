package schema

import "github.com/graphql-go/graphql"

var modelType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Model",
	Fields: graphql.Fields{
		"id": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
		},
		"object": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
		},
		"created": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
		},
		"ownedBy": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
		},
	},
})

var usageType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Usage",
	Fields: graphql.Fields{
		"promptTokens": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
		},
		"completionTokens": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
		},
		"totalTokens": &graphql.Field{
			Type: graphql.NewNonNull(graphql.Int),
		},
	},
})

var messageType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Message",
	Fields: graphql.Fields{
		"role": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
		},
		"content": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
		},
	},
})

var chatResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "ChatResponse",
	Fields: graphql.Fields{
		"message": &graphql.Field{
			Type: graphql.NewNonNull(messageType),
		},
		"model": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
		},
		"usage": &graphql.Field{
			Type: usageType,
		},
	},
})

var completionResponseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "CompletionResponse",
	Fields: graphql.Fields{
		"text": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
		},
		"model": &graphql.Field{
			Type: graphql.NewNonNull(graphql.String),
		},
		"usage": &graphql.Field{
			Type: usageType,
		},
	},
})

var messageInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "MessageInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"role": &graphql.InputObjectFieldConfig{
			Type: graphql.NewNonNull(graphql.String),
		},
		"content": &graphql.InputObjectFieldConfig{
			Type: graphql.NewNonNull(graphql.String),
		},
	},
})

var chatInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ChatInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"messages": &graphql.InputObjectFieldConfig{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(messageInputType))),
		},
		"model": &graphql.InputObjectFieldConfig{
			Type: graphql.String,
		},
		"temperature": &graphql.InputObjectFieldConfig{
			Type: graphql.Float,
		},
		"maxTokens": &graphql.InputObjectFieldConfig{
			Type: graphql.Int,
		},
	},
})

var completionInputType = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "CompletionInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"prompt": &graphql.InputObjectFieldConfig{
			Type: graphql.NewNonNull(graphql.String),
		},
		"model": &graphql.InputObjectFieldConfig{
			Type: graphql.String,
		},
		"maxTokens": &graphql.InputObjectFieldConfig{
			Type: graphql.Int,
		},
		"temperature": &graphql.InputObjectFieldConfig{
			Type: graphql.Float,
		},
	},
})
