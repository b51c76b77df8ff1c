package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessellate-io/promptql/internal/schema"
	"github.com/tessellate-io/promptql/internal/services/llm"
	"github.com/tessellate-io/promptql/internal/services/llm/models"
)

type stubService struct{}

func (stubService) CreateChatCompletion(ctx context.Context, req models.ChatRequest) (*models.ChatResult, error) {
	return nil, errors.New("not implemented")
}

func (stubService) CreateCompletion(ctx context.Context, req models.CompletionRequest) (*models.CompletionResult, error) {
	return nil, errors.New("not implemented")
}

func (stubService) ListModels(ctx context.Context) ([]models.ModelInfo, error) {
	return nil, errors.New("not implemented")
}

func newTestHandler(t *testing.T, cfg GraphQLConfig) *GraphQL {
	t.Helper()

	s, err := schema.New()
	require.NoError(t, err)

	cfg.Schema = s
	return NewGraphQL(cfg)
}

func TestGraphQLHandler(t *testing.T) {
	t.Run("Executes a query with a per-request service", func(t *testing.T) {
		calls := 0
		h := newTestHandler(t, GraphQLConfig{
			NewService: func() (llm.Service, error) {
				calls++
				return stubService{}, nil
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query": "{ health }"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, calls)

		var body struct {
			Data struct {
				Health string `json:"health"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "OK", body.Data.Health)
	})

	t.Run("Builds a fresh service per request", func(t *testing.T) {
		calls := 0
		h := newTestHandler(t, GraphQLConfig{
			NewService: func() (llm.Service, error) {
				calls++
				return stubService{}, nil
			},
		})

		for i := 0; i < 3; i++ {
			req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query": "{ health }"}`))
			req.Header.Set("Content-Type", "application/json")
			h.ServeHTTP(httptest.NewRecorder(), req)
		}

		assert.Equal(t, 3, calls)
	})

	t.Run("Turns service construction failures into a JSON 500", func(t *testing.T) {
		h := newTestHandler(t, GraphQLConfig{
			NewService: func() (llm.Service, error) {
				return nil, errors.New("OPENAI_KEY environment variable not set")
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query": "{ health }"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Internal Server Error", body["error"])
		assert.Equal(t, "OPENAI_KEY environment variable not set", body["message"])
	})

	t.Run("Recovers from panics with a JSON 500", func(t *testing.T) {
		h := newTestHandler(t, GraphQLConfig{
			NewService: func() (llm.Service, error) {
				panic("credential store exploded")
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(`{"query": "{ health }"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Internal Server Error", body["error"])
		assert.Equal(t, "credential store exploded", body["message"])
	})

	t.Run("Serves the playground when enabled", func(t *testing.T) {
		h := newTestHandler(t, GraphQLConfig{
			Playground: true,
			NewService: func() (llm.Service, error) {
				return stubService{}, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
		req.Header.Set("Accept", "text/html")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{"),
			"expected an HTML page, got %q", rec.Body.String())
	})

	t.Run("Keeps the playground off when disabled", func(t *testing.T) {
		h := newTestHandler(t, GraphQLConfig{
			Playground: false,
			NewService: func() (llm.Service, error) {
				return stubService{}, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/graphql", nil)
		req.Header.Set("Accept", "text/html")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
		assert.True(t, strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "{"),
			"expected a JSON response, got %q", rec.Body.String())
	})
}
