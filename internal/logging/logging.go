// Package logging holds the zap logger shared by the calculator.
//
// Prompts and the final report are written to stdout, so log lines only
// ever go to stderr or to a file.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fundraiser/internal/errors"
)

// Destinations understood by Config.Output besides a file path.
const (
	OutputStderr = "stderr"
	OutputStdout = "stdout"
)

var (
	// Logger is the global logger instance
	Logger *zap.Logger

	// Sugar is the sugared logger for convenience
	Sugar *zap.SugaredLogger

	mu      sync.Mutex
	logFile io.Closer
)

// Config contains logging configuration
type Config struct {
	// Level is the minimum log level; unknown levels mean warn
	Level string `json:"level"`

	// Format is json or console
	Format string `json:"format"`

	// Output is stderr (also when empty) or a file path
	Output string `json:"output"`

	// Development adds stack traces to error logs
	Development bool `json:"development"`
}

// DefaultConfig keeps the log quiet while the calculator is prompting on
// the same terminal.
func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "console",
		Output: OutputStderr,
	}
}

// Validate rejects stdout, which carries the prompts and the report.
func (c Config) Validate() error {
	if strings.EqualFold(strings.TrimSpace(c.Output), OutputStdout) {
		return errors.Config("logging.output must be stderr or a file path, stdout is used for prompts", nil).
			WithContext("output", c.Output)
	}
	return nil
}

// Initialize replaces the global logger. A log file opened by an earlier
// call is closed once the new logger is in place.
func Initialize(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	sink, file, err := openSink(cfg.Output)
	if err != nil {
		return err
	}

	opts := []zap.Option{zap.AddCaller()}
	if cfg.Development {
		opts = append(opts, zap.Development(), zap.AddStacktrace(zapcore.ErrorLevel))
	}
	logger := zap.New(zapcore.NewCore(newEncoder(cfg.Format), sink, parseLevel(cfg.Level)), opts...)

	install(logger, file)
	return nil
}

// InitializeDefault sets up the logger with default configuration
func InitializeDefault() {
	_ = Initialize(DefaultConfig())
}

// Sync flushes the logger
func Sync() {
	mu.Lock()
	defer mu.Unlock()
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// Close flushes the logger and closes its log file, if any. Later log
// calls go to stderr.
func Close() error {
	Sync()
	logger := zap.New(zapcore.NewCore(newEncoder("console"), zapcore.Lock(os.Stderr), zapcore.WarnLevel), zap.AddCaller())
	if prev := swap(logger, nil); prev != nil {
		if err := prev.Close(); err != nil {
			return errors.IO("failed to close log file", err)
		}
	}
	return nil
}

// With returns a logger with additional fields
func With(fields ...zap.Field) *zap.Logger {
	return Logger.With(fields...)
}

// Debug logs at debug level
func Debug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, fields...)
}

// Info logs at info level
func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

// Warn logs at warn level
func Warn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

// Error logs at error level
func Error(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}

func openSink(output string) (zapcore.WriteSyncer, io.Closer, error) {
	switch strings.TrimSpace(output) {
	case "", OutputStderr:
		return zapcore.Lock(os.Stderr), nil, nil
	}
	file, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, errors.IO("failed to open log file", err).WithContext("path", output)
	}
	return zapcore.AddSync(file), file, nil
}

func newEncoder(format string) zapcore.Encoder {
	ec := zap.NewProductionEncoderConfig()
	ec.TimeKey = "timestamp"
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	if format == "json" {
		return zapcore.NewJSONEncoder(ec)
	}
	ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(ec)
}

func parseLevel(s string) zapcore.Level {
	level, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.WarnLevel
	}
	return level
}

// install swaps in logger and closes the file held by the previous one.
func install(logger *zap.Logger, file io.Closer) {
	if prev := swap(logger, file); prev != nil {
		_ = prev.Close()
	}
}

func swap(logger *zap.Logger, file io.Closer) io.Closer {
	mu.Lock()
	defer mu.Unlock()
	if Logger != nil {
		_ = Logger.Sync()
	}
	prev := logFile
	Logger = logger
	Sugar = logger.Sugar()
	logFile = file
	return prev
}

func init() {
	InitializeDefault()
}
