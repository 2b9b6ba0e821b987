package lib

import (
	"io"
	"os"

	"github.com/solace-fi/solace-client-sub001/internal/interfaces"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const timeLayout = "2006-01-02T15:04:05"

type LoggerConfig struct {
	Level    string
	Color    bool
	IsProd   bool
	JSON     bool
	FilePath string // empty disables file logging
}

type Logger struct {
	*zap.SugaredLogger
}

func NewLogger(cfg LoggerConfig) (*Logger, error) {
	return NewLoggerWriter(cfg, nil)
}

// NewLoggerWriter additionally copies log output to wr, used to capture logs in tests
func NewLoggerWriter(cfg LoggerConfig, wr io.Writer) (*Logger, error) {
	log, err := newLogger(cfg, wr)
	if err != nil {
		return nil, err
	}
	return &Logger{SugaredLogger: log.Sugar()}, nil
}

// NewTestLogger logs only to stdout
func NewTestLogger() *Logger {
	log, _ := newLogger(LoggerConfig{Level: "debug"}, nil)
	return &Logger{SugaredLogger: log.Sugar()}
}

func (l *Logger) Named(name string) interfaces.ILogger {
	return &Logger{l.SugaredLogger.Named(name)}
}

func (l *Logger) With(args ...interface{}) interfaces.ILogger {
	return &Logger{l.SugaredLogger.With(args...)}
}

func newLogger(cfg LoggerConfig, extraWriter io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	cores := []zapcore.Core{
		zapcore.NewCore(newEncoder(cfg.IsProd, cfg.Color, cfg.JSON), zapcore.AddSync(os.Stdout), level),
	}

	if cfg.FilePath != "" {
		file, err := os.OpenFile(cfg.FilePath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
		if err != nil {
			return nil, err
		}
		// file sink always gets everything, level filtering is for console only
		cores = append(cores, zapcore.NewCore(newEncoder(cfg.IsProd, false, cfg.JSON), zapcore.AddSync(file), zapcore.DebugLevel))
	}

	if extraWriter != nil {
		cores = append(cores, zapcore.NewCore(newEncoder(false, false, false), zapcore.AddSync(extraWriter), level))
	}

	opts := []zap.Option{zap.AddStacktrace(zap.ErrorLevel)}
	if !cfg.IsProd {
		opts = append(opts, zap.Development())
	}

	return zap.New(zapcore.NewTee(cores...), opts...), nil
}

func newEncoder(isProd bool, color bool, isJSON bool) zapcore.Encoder {
	var encoderCfg zapcore.EncoderConfig
	if isProd {
		encoderCfg = zap.NewProductionEncoderConfig()
	} else {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
		encoderCfg.EncodeTime = zapcore.TimeEncoderOfLayout(timeLayout)
	}

	if isJSON {
		return zapcore.NewJSONEncoder(encoderCfg)
	}
	if color {
		encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return zapcore.NewConsoleEncoder(encoderCfg)
}
