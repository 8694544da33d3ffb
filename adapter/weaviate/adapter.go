package weaviate

import (
	"context"
	"fmt"
	"sync"

	"github.com/weaviate/weaviate-go-client/v5/weaviate"
	"github.com/weaviate/weaviate/entities/models"
	"go.uber.org/zap"
)

type Adapter struct {
	client    *weaviate.Client
	className string
	logger    *zap.Logger

	initOnce sync.Once
	initErr  error
}

type Option func(*Adapter)

func WithClassName(className string) Option {
	return func(a *Adapter) {
		a.className = className
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

const defaultClassName = "LegalDocument"

func New(client *weaviate.Client, options ...Option) *Adapter {
	a := &Adapter{
		client:    client,
		className: defaultClassName,
		logger:    zap.NewNop(),
	}

	for _, o := range options {
		o(a)
	}

	return a
}

const adapterName = "weaviate"

func (a *Adapter) Name() string {
	return adapterName
}

// ensureClass creates the class (collection) in weaviate if it doesn't exist
// yet. It runs lazily on first use and the result is cached for the process
// lifetime; concurrent first callers wait for a single initialisation.
func (a *Adapter) ensureClass(ctx context.Context) error {
	a.initOnce.Do(func() {
		cls := &models.Class{
			Class:      a.className,
			Vectorizer: "none",
		}
		exists, err := a.client.Schema().ClassExistenceChecker().WithClassName(cls.Class).Do(ctx)
		if err != nil {
			a.initErr = fmt.Errorf("weaviate error: %w", err)
			return
		}
		if !exists {
			if err := a.client.Schema().ClassCreator().WithClass(cls).Do(ctx); err != nil {
				a.initErr = fmt.Errorf("weaviate error: %w", err)
				return
			}
			a.logger.Info("created weaviate class", zap.String("class", a.className))
		}
	})

	return a.initErr
}
