package legalserver

import (
	"context"
)

// Embedder encodes question text as a fixed-dimension vector.
type Embedder interface {
	Name() string
	EmbedContent(ctx context.Context, content string) (Vector, error)
}

// SearchQuery carries either a precomputed vector or the raw question text,
// depending on whether a local embedder is configured.
type SearchQuery struct {
	Text   string
	Vector Vector
}

// Retriever returns up to limit documents closest to the query, ordered by
// descending similarity. An empty slice means the collection had no matches.
type Retriever interface {
	Name() string
	Search(ctx context.Context, query SearchQuery, limit int) ([]Document, error)
}

// GenerativeModel answers a prompt with a single non-streaming completion.
type GenerativeModel interface {
	Generate(ctx context.Context, prompt Prompt) (string, error)
}

// QueryLog appends one record per request. Implementations must never fail
// the request; write errors are swallowed.
type QueryLog interface {
	Record(ctx context.Context, record LogRecord)
}
