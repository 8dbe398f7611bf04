package logger

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	previous := Logger
	Logger = zap.New(core).Sugar()
	t.Cleanup(func() { Logger = previous })
	return logs
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.False(t, cfg.Debug)
	assert.Equal(t, "human", cfg.LogFormat)
	assert.Empty(t, cfg.LogFile)
}

func TestInitLoggerWithFile(t *testing.T) {
	previous := Logger
	t.Cleanup(func() { Logger = previous })

	cfg := DefaultConfig()
	cfg.LogFormat = "json"
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "ntgrbak.log")
	require.NoError(t, InitLogger(cfg))
	assert.FileExists(t, cfg.LogFile)
}

func TestWithFieldAndHelpers(t *testing.T) {
	logs := observe(t)

	WithField("routine", "nvram wrap").Debugw("Done", "bytes_out", 65536)
	LogError("Command execution failed", errors.New("boom"), map[string]interface{}{"hint": "x"})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "nvram wrap", entries[0].ContextMap()["routine"])
	assert.EqualValues(t, 65536, entries[0].ContextMap()["bytes_out"])
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}
