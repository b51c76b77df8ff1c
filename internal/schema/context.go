package schema

import (
	"context"

	"github.com/tessellate-io/promptql/internal/services/llm"
)

type contextKey string

const serviceKey contextKey = "llm_service"

// WithService stores the provider service on the context so resolvers can
// reach it without global state.
func WithService(ctx context.Context, service llm.Service) context.Context {
	return context.WithValue(ctx, serviceKey, service)
}

// ServiceFrom extracts the provider service stored on the context.
func ServiceFrom(ctx context.Context) (llm.Service, bool) {
	service, ok := ctx.Value(serviceKey).(llm.Service)
	return service, ok
}
