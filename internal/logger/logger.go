// Package logger provides the shared console logger for progress and
// diagnostic output. Log lines go to stderr so command output stays
// clean.
package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap's SugaredLogger.
type Logger struct {
	*zap.SugaredLogger
}

var (
	globalLogger *Logger
	once         sync.Once
)

// Get returns a singleton logger. The first call fixes the verbosity;
// later calls ignore the argument and return the same instance.
func Get(verbose bool) *Logger {
	once.Do(func() {
		globalLogger = newZapLogger(verbose)
	})
	return globalLogger
}

func newZapLogger(verbose bool) *Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder

	encoder := zapcore.NewConsoleEncoder(cfg)
	ws := zapcore.Lock(os.Stderr)
	core := zapcore.NewCore(encoder, zapcore.AddSync(ws), zap.NewAtomicLevelAt(level))

	return &Logger{SugaredLogger: zap.New(core).Sugar()}
}
