package hugot

import (
	"fmt"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"
	"go.uber.org/zap"
)

type Adapter struct {
	session      *hugot.Session
	modelName    string
	onnxFilePath string
	modelsDir    string
	logger       *zap.Logger

	initOnce sync.Once
	pipeline *pipelines.FeatureExtractionPipeline
	initErr  error
}

type Option func(*Adapter)

func WithModel(name string) Option {
	return func(a *Adapter) {
		a.modelName = name
	}
}

func WithOnnxFilePath(path string) Option {
	return func(a *Adapter) {
		a.onnxFilePath = path
	}
}

func WithModelsDir(path string) Option {
	return func(a *Adapter) {
		a.modelsDir = path
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

const (
	defaultModelName   = "sentence-transformers/all-MiniLM-L6-v2"
	defaultModelsDir   = "/models"
	defaultOnxFilePath = "onnx/model.onnx"
)

func New(session *hugot.Session, options ...Option) *Adapter {
	a := &Adapter{
		session:      session,
		modelName:    defaultModelName,
		onnxFilePath: defaultOnxFilePath,
		modelsDir:    defaultModelsDir,
		logger:       zap.NewNop(),
	}

	for _, o := range options {
		o(a)
	}

	return a
}

const adapterName = "hugot"

func (a *Adapter) Name() string {
	return adapterName
}

// ensurePipeline builds the feature extraction pipeline on first use,
// exactly once per process, and reuses it for all subsequent calls. The
// model is downloaded to the models dir if it is not there yet.
func (a *Adapter) ensurePipeline() (*pipelines.FeatureExtractionPipeline, error) {
	a.initOnce.Do(func() {
		modelPath, err := checkModelExists(a.modelsDir, a.modelName)
		if err != nil {
			a.initErr = fmt.Errorf("failed to check embedding model: %w", err)
			return
		}

		if modelPath == "" {
			a.logger.Info("start downloading embedding model", zap.String("model", a.modelName))

			downloadOptions := hugot.NewDownloadOptions()
			downloadOptions.OnnxFilePath = a.onnxFilePath
			modelPath, err = hugot.DownloadModel(a.modelName, a.modelsDir, downloadOptions)
			if err != nil {
				a.initErr = fmt.Errorf("failed to download embedding model: %w", err)
				return
			}

			a.logger.Info("downloaded embedding model", zap.String("model", a.modelName))
		} else {
			a.logger.Info("embedding model already exists, skipping download", zap.String("path", modelPath))
		}

		config := hugot.FeatureExtractionConfig{
			ModelPath: modelPath,
			Name:      "embeddingPipeline",
		}

		a.pipeline, a.initErr = hugot.NewPipeline(a.session, config)
		if a.initErr != nil {
			a.initErr = fmt.Errorf("failed to create embedding pipeline: %w", a.initErr)
		}
	})

	return a.pipeline, a.initErr
}

func checkModelExists(destination, modelName string) (string, error) {
	modelP := modelName
	if strings.Contains(modelP, ":") {
		modelP = strings.Split(modelName, ":")[0]
	}
	modelPath := path.Join(destination, strings.ReplaceAll(modelP, "/", "_"))

	_, err := os.Stat(modelPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}

	return modelPath, nil
}
