package utils

import "testing"

func TestConformEmbeddingPadsNarrowVectors(t *testing.T) {
	// Gemini's text embedding models emit 768 values.
	in := make([]float32, 768)
	in[0] = 0.5
	in[767] = -0.25

	out := conformEmbedding(in)
	if len(out) != EmbeddingDim {
		t.Fatalf("expected %d dimensions, got %d", EmbeddingDim, len(out))
	}
	if out[0] != 0.5 || out[767] != -0.25 {
		t.Fatal("original values must be preserved")
	}
	for i := 768; i < EmbeddingDim; i++ {
		if out[i] != 0 {
			t.Fatalf("expected zero padding at index %d, got %f", i, out[i])
		}
	}
}

func TestConformEmbeddingExactWidthUntouched(t *testing.T) {
	in := make([]float32, EmbeddingDim)
	in[100] = 1

	out := conformEmbedding(in)
	if len(out) != EmbeddingDim {
		t.Fatalf("expected %d dimensions, got %d", EmbeddingDim, len(out))
	}
	if out[100] != 1 {
		t.Fatal("values must pass through unchanged")
	}
}

func TestConformEmbeddingTruncatesWideVectors(t *testing.T) {
	in := make([]float32, EmbeddingDim+64)
	in[EmbeddingDim-1] = 2

	out := conformEmbedding(in)
	if len(out) != EmbeddingDim {
		t.Fatalf("expected %d dimensions, got %d", EmbeddingDim, len(out))
	}
	if out[EmbeddingDim-1] != 2 {
		t.Fatal("values inside the column width must be preserved")
	}
}
