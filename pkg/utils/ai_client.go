package utils

import (
	"context"

	"github.com/pgvector/pgvector-go"
)

// AIClientInterface abstracts the model provider so the chat service can
// run against OpenAI or Gemini depending on deployment configuration.
type AIClientInterface interface {
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
	GenerateReply(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}

// EmbeddingDim is the width of the attraction_embeddings vector column.
// Every provider's output must be conformed to this before it is stored
// or compared; pgvector rejects operands of different dimensions.
const EmbeddingDim = 1536

// conformEmbedding zero-pads narrower vectors (Gemini's text-embedding
// models emit 768 values) and truncates wider ones. Padding with zeros
// does not change the cosine ordering between vectors from the same
// provider.
func conformEmbedding(values []float32) []float32 {
	if len(values) == EmbeddingDim {
		return values
	}
	out := make([]float32, EmbeddingDim)
	copy(out, values)
	return out
}
