package googlegenai

import (
	"go.uber.org/zap"
	"google.golang.org/genai"
)

type Adapter struct {
	client          *genai.Client
	generativeModel string
	temperature     float32
	logger          *zap.Logger
}

type Option func(*Adapter)

func WithGenerativeModel(model string) Option {
	return func(a *Adapter) {
		a.generativeModel = model
	}
}

func WithTemperature(temperature float32) Option {
	return func(a *Adapter) {
		a.temperature = temperature
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(a *Adapter) {
		a.logger = logger
	}
}

const (
	defaultGenerativeModel = "gemini-2.0-flash"
	// Low temperature biases the model towards deterministic, literal
	// answers grounded in the provided context.
	defaultTemperature = 0.1
)

func New(client *genai.Client, options ...Option) *Adapter {
	a := &Adapter{
		client:          client,
		generativeModel: defaultGenerativeModel,
		temperature:     defaultTemperature,
		logger:          zap.NewNop(),
	}

	for _, o := range options {
		o(a)
	}

	a.logger.Sugar().With(
		"generative model", a.generativeModel,
		"temperature", a.temperature,
	).Info("init google genai adapter")

	return a
}

const adapterName = "google-genai"

func (a *Adapter) Name() string {
	return adapterName
}
