package querylog

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/RichardKnop/legalserver"
)

// Adapter appends one JSON object per request to a local file. Records are
// best-effort: write failures are swallowed and never affect the response.
type Adapter struct {
	logger *zap.Logger
}

type Option func(*lumberjack.Logger)

func WithMaxSizeMB(size int) Option {
	return func(l *lumberjack.Logger) {
		l.MaxSize = size
	}
}

func WithMaxBackups(count int) Option {
	return func(l *lumberjack.Logger) {
		l.MaxBackups = count
	}
}

const defaultMaxSizeMB = 50

func New(filename string, options ...Option) *Adapter {
	rotator := &lumberjack.Logger{
		Filename: filename,
		MaxSize:  defaultMaxSizeMB,
	}

	for _, o := range options {
		o(rotator)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.MessageKey = "message"

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(rotator),
		zap.InfoLevel,
	)

	return &Adapter{
		logger: zap.New(core),
	}
}

// Record writes one log line. Failed requests are written at warn level so
// they can be grepped apart without parsing every record.
func (a *Adapter) Record(ctx context.Context, record legalserver.LogRecord) {
	fields := []zap.Field{
		zap.String("request_id", record.RequestID.String()),
		zap.Time("time", record.Time),
		zap.String("ip", record.IP),
		zap.Int("status", record.Status),
		zap.Int("question_length", record.QuestionLength),
	}
	if record.Mode != "" {
		fields = append(fields, zap.String("mode", string(record.Mode)))
	}

	if record.Error != "" {
		fields = append(fields, zap.String("error", record.Error))
		a.logger.Warn("ask", fields...)
		return
	}

	a.logger.Info("ask", fields...)
}

func (a *Adapter) Sync() error {
	return a.logger.Sync()
}
