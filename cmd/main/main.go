package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/knights-analytics/hugot"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"github.com/weaviate/weaviate-go-client/v5/weaviate"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/RichardKnop/legalserver"
	googlegenai "github.com/RichardKnop/legalserver/adapter/google-genai"
	hugotAdapter "github.com/RichardKnop/legalserver/adapter/hugot"
	"github.com/RichardKnop/legalserver/adapter/querylog"
	redisAdapter "github.com/RichardKnop/legalserver/adapter/redis"
	"github.com/RichardKnop/legalserver/adapter/rest"
	weaviateAdapter "github.com/RichardKnop/legalserver/adapter/weaviate"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		log.Fatal("fatal error config file: ", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("logger: ", err)
	}
	defer logger.Sync()

	// The client gets the API key from the environment variable `GEMINI_API_KEY`.
	genaiClient, err := genai.NewClient(ctx, nil)
	if err != nil {
		logger.Fatal("genai client", zap.Error(err))
	}

	wvClient, err := weaviate.NewClient(weaviate.Config{
		Host:   viper.GetString("weaviate.host"),
		Scheme: viper.GetString("weaviate.scheme"),
	})
	if err != nil {
		logger.Fatal("weaviate client", zap.Error(err))
	}
	retriever := weaviateAdapter.New(
		wvClient,
		weaviateAdapter.WithClassName(viper.GetString("weaviate.class")),
		weaviateAdapter.WithLogger(logger),
	)

	lm := googlegenai.New(
		genaiClient,
		googlegenai.WithGenerativeModel(viper.GetString("adapter.generative.model")),
		googlegenai.WithLogger(logger),
	)

	coreOptions := []legalserver.Option{
		legalserver.WithLogger(logger),
	}
	if viper.GetBool("ask.retrieval_fallback") {
		coreOptions = append(coreOptions, legalserver.WithRetrievalFallback())
	}

	// Embedder
	switch name := viper.GetString("adapter.embed.name"); name {
	case "hugot":
		logger.Info("embed adapter: hugot")
		session, err := hugot.NewGoSession()
		if err != nil {
			logger.Fatal("hugot session", zap.Error(err))
		}
		defer func() {
			if err := session.Destroy(); err != nil {
				logger.Error("hugot session destroy", zap.Error(err))
			}
		}()
		embedder := hugotAdapter.New(
			session,
			hugotAdapter.WithModel(viper.GetString("adapter.embed.model")),
			hugotAdapter.WithModelsDir(viper.GetString("adapter.embed.models_dir")),
			hugotAdapter.WithLogger(logger),
		)
		coreOptions = append(coreOptions, legalserver.WithEmbedder(embedder))
	case "none", "":
		// The retriever vectorises the raw question text itself.
		logger.Info("embed adapter: none, querying by text")
	default:
		logger.Fatal("unknown embed adapter", zap.String("name", name))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     viper.GetString("redis.addr"),
		Password: viper.GetString("redis.password"),
		DB:       viper.GetInt("redis.db"),
	})
	limiter := redisAdapter.New(
		rdb,
		redisAdapter.WithWindow(viper.GetDuration("ratelimit.window")),
		redisAdapter.WithLimit(viper.GetInt64("ratelimit.limit")),
		redisAdapter.WithLogger(logger),
	)

	queryLog := querylog.New(viper.GetString("querylog.file"))
	defer queryLog.Sync()

	var (
		ls          = legalserver.New(retriever, lm, coreOptions...)
		restAdapter = rest.New(
			ls,
			rest.WithRateLimiter(limiter),
			rest.WithQueryLog(queryLog),
			rest.WithLogger(logger),
		)
		mux     = http.NewServeMux()
		address = ":" + viper.GetString("http.port")
	)
	restAdapter.RegisterHandlers(mux)

	httpServer := &http.Server{
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      35 * time.Second,
		IdleTimeout:       30 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		Addr:              address,
		Handler:           mux,
	}

	logger.Info("listening", zap.String("address", address))

	go func() {
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
		logger.Info("stopped serving new connections")
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	shutdownCtx, shutdownRelease := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownRelease()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("HTTP shutdown error", zap.Error(err))
	}
	logger.Info("graceful shutdown complete")
}
