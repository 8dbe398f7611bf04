package logger

import (
	"fmt"
	"path/filepath"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/deploymenttheory/go-ntgrbak/internal/common/fsutil"
)

// Global logger instance. It discards everything until InitLogger runs.
var Logger = zap.NewNop().Sugar()

// LoggerConfig contains configuration for the logger
type LoggerConfig struct {
	Debug     bool   // Enable debug level logging
	LogFormat string // "json" or "human"
	LogFile   string // Path to log file (optional)
}

// DefaultConfig returns a default configuration
func DefaultConfig() LoggerConfig {
	return LoggerConfig{
		Debug:     false,
		LogFormat: "human",
	}
}

// InitLogger initializes the logger with the provided configuration.
// Log output goes to stderr; stdout carries the converted data.
func InitLogger(config LoggerConfig) error {
	var zapConfig zap.Config

	if config.LogFormat == "json" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	outputPaths := []string{"stderr"}
	if config.LogFile != "" {
		logDir := filepath.Dir(config.LogFile)
		if err := fsutil.CreateDirIfNotExists(logDir); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		outputPaths = append(outputPaths, config.LogFile)
	}
	zapConfig.OutputPaths = outputPaths
	zapConfig.ErrorOutputPaths = []string{"stderr"}

	if config.Debug {
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	} else {
		zapConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
		zapConfig.DisableStacktrace = true
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	Logger = logger.Sugar()
	return nil
}

// Log functions
func LogInfo(message string, fields map[string]interface{}) {
	Logger.Infow(message, flattenFields(fields)...)
}

func LogWarn(message string, fields map[string]interface{}) {
	Logger.Warnw(message, flattenFields(fields)...)
}

func LogError(message string, err error, fields map[string]interface{}) {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	Logger.Errorw(message, flattenFields(fields)...)
}

func LogDebug(message string, fields map[string]interface{}) {
	Logger.Debugw(message, flattenFields(fields)...)
}

// WithField returns a logger with a field added to every log
func WithField(key string, value interface{}) *zap.SugaredLogger {
	return Logger.With(key, value)
}

// flattenFields turns a field map into sorted key/value pairs so that
// output ordering is stable.
func flattenFields(fields map[string]interface{}) []interface{} {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	flat := make([]interface{}, 0, 2*len(keys))
	for _, k := range keys {
		flat = append(flat, k, fields[k])
	}
	return flat
}

// Sync flushes any buffered log entries
func Sync() error {
	return Logger.Sync()
}
