package hugot

import (
	"context"
	"fmt"
	"math"

	"github.com/RichardKnop/legalserver"
)

// EmbedContent encodes the content as a single vector. The pipeline mean
// pools token vectors; the result is L2-normalized so cosine and dot product
// similarity agree.
func (a *Adapter) EmbedContent(ctx context.Context, content string) (legalserver.Vector, error) {
	pipeline, err := a.ensurePipeline()
	if err != nil {
		return nil, err
	}

	embeddingResult, err := pipeline.RunPipeline([]string{content})
	if err != nil {
		return nil, err
	}

	if len(embeddingResult.Embeddings) != 1 {
		return nil, fmt.Errorf("embedded batch size mismatch")
	}

	return normalize(embeddingResult.Embeddings[0]), nil
}

// normalize scales the vector to unit L2 norm. Zero vectors are returned
// unchanged.
func normalize(fs []float32) legalserver.Vector {
	var sum float64
	for _, f := range fs {
		sum += float64(f) * float64(f)
	}
	if sum == 0 {
		return legalserver.Vector(fs)
	}

	norm := float32(math.Sqrt(sum))
	out := make(legalserver.Vector, len(fs))
	for i, f := range fs {
		out[i] = f / norm
	}
	return out
}
