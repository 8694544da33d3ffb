package legalserver

import (
	"time"

	"go.uber.org/zap"
)

const ServiceName = "legal-backend"

type clock func() time.Time

type legalServer struct {
	embedder          Embedder
	retriever         Retriever
	generative        GenerativeModel
	logger            *zap.Logger
	now               clock
	retrievalFallback bool
}

type Option func(*legalServer)

// WithEmbedder enables local query embedding. Without it the retriever
// receives the raw question text and is expected to vectorise it itself.
func WithEmbedder(embedder Embedder) Option {
	return func(ls *legalServer) {
		ls.embedder = embedder
	}
}

// WithRetrievalFallback makes the server answer without context when the
// retriever is unavailable instead of failing the request.
func WithRetrievalFallback() Option {
	return func(ls *legalServer) {
		ls.retrievalFallback = true
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(ls *legalServer) {
		ls.logger = logger
	}
}

func New(retriever Retriever, gm GenerativeModel, options ...Option) *legalServer {
	ls := &legalServer{
		retriever:  retriever,
		generative: gm,
		logger:     zap.NewNop(),
		now:        func() time.Time { return time.Now().UTC() },
	}

	for _, o := range options {
		o(ls)
	}

	return ls
}
