package legalserver

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Mode tells the caller whether the answer was grounded in retrieved
// context or produced without it because the vector store was unreachable.
type Mode string

const (
	ModeRAG     Mode = "rag"
	ModeLLMOnly Mode = "llm_only"
)

// NoAnswerText is returned when retrieval finds no relevant documents. It
// matches the phrase the system instruction tells the model to use, so
// callers only ever see one "no answer" string.
const NoAnswerText = "No surge del material proporcionado."

// topK is how many passages are retrieved per question.
const topK = 3

type Response struct {
	Question string     `json:"question"`
	Answer   string     `json:"answer"`
	Sources  []Document `json:"sources"`
	Mode     Mode       `json:"mode,omitempty"`
}

// Ask runs the question through validation, retrieval and the generative
// model, terminating on the first applicable branch.
func (ls *legalServer) Ask(ctx context.Context, question Question) (Response, error) {
	if err := question.Validate(); err != nil {
		return Response{}, err
	}

	query := SearchQuery{Text: question.Content}
	if ls.embedder != nil {
		vector, err := ls.embedder.EmbedContent(ctx, question.Content)
		if err != nil {
			return Response{}, fmt.Errorf("embedding question: %w", err)
		}
		query.Vector = vector
	}

	mode := ModeRAG
	documents, err := ls.retriever.Search(ctx, query, topK)
	if err != nil {
		if !ls.retrievalFallback {
			return Response{}, fmt.Errorf("searching documents: %w", err)
		}
		// Degraded mode: answer without context rather than fail the request.
		ls.logger.Warn("retriever unavailable, continuing without context",
			zap.String("retriever", ls.retriever.Name()),
			zap.Error(err),
		)
		mode = ModeLLMOnly
		documents = nil
	}

	if mode == ModeRAG && len(documents) == 0 {
		return Response{
			Question: question.Content,
			Answer:   NoAnswerText,
			Sources:  []Document{},
		}, nil
	}

	answer, err := ls.generative.Generate(ctx, BuildPrompt(question, documents))
	if err != nil {
		return Response{}, fmt.Errorf("calling generative model: %w", err)
	}

	sources := documents
	if sources == nil {
		sources = []Document{}
	}

	return Response{
		Question: question.Content,
		Answer:   answer,
		Sources:  sources,
		Mode:     mode,
	}, nil
}
