package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewRespectsLevel(t *testing.T) {
	logger, err := New(DefaultConfig())
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))

	logger, err = New(DebugConfig())
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(Config{Level: "loud", Format: "console"})
	assert.Error(t, err)

	_, err = New(Config{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestInstallReplacesGlobal(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	restore := Install(zap.New(core))

	zap.L().Info("hello", zap.Int("n", 1))
	restore()
	zap.L().Info("after restore")

	require.Equal(t, 1, recorded.Len())
	entry := recorded.All()[0]
	assert.Equal(t, "hello", entry.Message)
	assert.Equal(t, int64(1), entry.ContextMap()["n"])
}
