package nlp

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// DefaultEmbeddingModel is the Gemini embedding model used when none is configured.
const DefaultEmbeddingModel = "text-embedding-004"

// GeminiEmbedder implements Embedder using Google Gemini embedding models.
// Vectors are cached per keyword text for the lifetime of the embedder, so
// repeated similarity computations over the same keyword sets embed each
// keyword once.
type GeminiEmbedder struct {
	client *genai.Client
	model  string

	mu    sync.RWMutex
	cache map[string][]float32
}

// NewGeminiEmbedder creates a new Gemini-backed embedder.
func NewGeminiEmbedder(ctx context.Context, apiKey, model string) (*GeminiEmbedder, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = DefaultEmbeddingModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiEmbedder{
		client: client,
		model:  model,
		cache:  make(map[string][]float32),
	}, nil
}

// Embed returns the embedding vector for text, consulting the cache first.
func (e *GeminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	e.mu.RLock()
	cached, ok := e.cache[text]
	e.mu.RUnlock()
	if ok {
		return cached, nil
	}

	em := e.client.EmbeddingModel(e.model)
	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return nil, &AnnotationError{Op: "embed", Cause: err}
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return nil, &AnnotationError{Op: "embed", Cause: fmt.Errorf("empty embedding for %q", text)}
	}

	e.mu.Lock()
	e.cache[text] = resp.Embedding.Values
	e.mu.Unlock()

	return resp.Embedding.Values, nil
}

// Close releases the underlying Gemini client.
func (e *GeminiEmbedder) Close() error {
	return e.client.Close()
}
