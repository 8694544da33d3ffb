package rest

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/RichardKnop/legalserver"
)

type LegalServer interface {
	Ask(ctx context.Context, question legalserver.Question) (legalserver.Response, error)
}

// RateLimiter reports whether a caller may proceed. Scoped to the ask
// endpoint only.
type RateLimiter interface {
	Allow(ctx context.Context, caller string) (bool, error)
}

type Adapter struct {
	legalServer LegalServer
	limiter     RateLimiter
	queryLog    legalserver.QueryLog
	logger      *zap.Logger
	now         func() time.Time
}

type Option func(*Adapter)

func WithRateLimiter(limiter RateLimiter) Option {
	return func(a *Adapter) {
		a.limiter = limiter
	}
}

func WithQueryLog(queryLog legalserver.QueryLog) Option {
	return func(a *Adapter) {
		a.queryLog = queryLog
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

func New(legalServer LegalServer, options ...Option) *Adapter {
	a := &Adapter{
		legalServer: legalServer,
		logger:      zap.NewNop(),
		now:         func() time.Time { return time.Now().UTC() },
	}

	for _, o := range options {
		o(a)
	}

	return a
}

func (a *Adapter) RegisterHandlers(mux *http.ServeMux) {
	mux.HandleFunc("GET /health", a.healthHandler)
	mux.Handle("POST /ask", a.rateLimit(http.HandlerFunc(a.askHandler)))
}
