package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestVerbosityToLevel(t *testing.T) {
	assert.Equal(t, zapcore.WarnLevel, VerbosityToLevel(VerbosityUser))
	assert.Equal(t, zapcore.InfoLevel, VerbosityToLevel(VerbosityInfo))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(VerbosityDebug))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(VerbosityTrace))
	assert.Equal(t, zapcore.DebugLevel, VerbosityToLevel(7))
}

func TestShouldLogTrace(t *testing.T) {
	assert.False(t, ShouldLogTrace(VerbosityDebug))
	assert.True(t, ShouldLogTrace(VerbosityTrace))
	assert.True(t, ShouldLogTrace(VerbosityTrace+1))
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "User", LevelName(0))
	assert.Equal(t, "Info (-v)", LevelName(1))
	assert.Equal(t, "Debug (-vv)", LevelName(2))
	assert.Equal(t, "Trace (-vvv)", LevelName(3))
}

func TestNopLoggerBeforeInitialize(t *testing.T) {
	// Package-level wrappers must be callable before Initialize
	require.NotNil(t, Logger)
	Infow("safe before init", "k", "v")
	Debugf("also safe: %d", 1)
}

func TestInitialize(t *testing.T) {
	require.NoError(t, Initialize(false, VerbosityInfo))
	require.NotNil(t, Logger)
	assert.False(t, JSONOutput)

	require.NoError(t, Initialize(true, VerbosityUser))
	assert.True(t, JSONOutput)
}
