package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestDefaultLoggerIsUsableBeforeInit(t *testing.T) {
	assert.NotPanics(t, func() {
		Info("before init", zap.String("k", "v"))
		Debug("before init")
	})
}

func TestInitLoggerWithConfig_Level(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	InitLoggerWithConfig("dev", "warn")
	assert.False(t, Log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, Log.Core().Enabled(zapcore.WarnLevel))

	InitLoggerWithConfig("prod", "")
	assert.True(t, Log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, Log.Core().Enabled(zapcore.DebugLevel))

	InitLoggerWithConfig("dev", "bogus")
	assert.True(t, Log.Core().Enabled(zapcore.DebugLevel))
}

func TestWithAddsFields(t *testing.T) {
	child := With(zap.String("quote_id", "q-1"))
	assert.NotNil(t, child)
}
