package loggerProvider

import (
	"log"
	"os"

	"assetdesk/providers"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LogProvider struct {
	level  string
	file   string
	logger *zap.Logger
}

// NewLogProvider logs to stderr, or to a rotating file when file is set.
func NewLogProvider(level, file string) providers.ZapLoggerProvider {
	return &LogProvider{level: level, file: file}
}

func (l *LogProvider) InitLogger() {
	lvl, err := zapcore.ParseLevel(l.level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	if l.file == "" {
		cfg := zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(lvl)
		l.logger, err = cfg.Build()
		if err != nil {
			log.Fatalf("Failed to initialize zap logger: %v", err)
		}
	} else {
		writer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   l.file,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		})
		encoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		l.logger = zap.New(zapcore.NewCore(encoder, writer, lvl), zap.AddCaller(), zap.ErrorOutput(zapcore.Lock(os.Stderr)))
	}
	zap.ReplaceGlobals(l.logger)
}

func (l *LogProvider) SyncLogger() {
	if l.logger != nil {
		_ = l.logger.Sync()
	}
}

func (l *LogProvider) GetLogger() *zap.Logger {
	if l.logger == nil {
		return zap.NewNop()
	}
	return l.logger
}
