package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	l, err := New(true, true)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))

	l, err = New(false, false)
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestConfig_WritesToStderr(t *testing.T) {
	cfg := config(true, false)
	assert.Equal(t, []string{"stderr"}, cfg.OutputPaths)
	assert.Equal(t, []string{"stderr"}, cfg.ErrorOutputPaths)
	assert.Equal(t, "json", cfg.Encoding)
}

func TestWithProvider(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	WithProvider(zap.New(core), " groq ", "llama3-8b-8192").Info("call")

	require.Equal(t, 1, logs.Len())
	ctx := logs.All()[0].ContextMap()
	assert.Equal(t, "groq", ctx[FieldProvider])
	assert.Equal(t, "llama3-8b-8192", ctx[FieldModel])

	core, logs = observer.New(zapcore.InfoLevel)
	WithProvider(zap.New(core), "", " ").Info("bare")
	assert.Empty(t, logs.All()[0].Context)

	assert.NotNil(t, WithProvider(nil, "x", ""))
}

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "ação", TruncateForLog("  ação ", 10))
	assert.Equal(t, "açã...", TruncateForLog("ação", 3))
	assert.Equal(t, "", TruncateForLog("abc", 0))
}
