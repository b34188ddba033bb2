package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLoggerLevels(t *testing.T) {
	logger, err := NewLogger(Config{Level: "debug"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	logger, err = NewLogger(Config{})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.InfoLevel))
	assert.True(t, logger.Core().Enabled(zap.WarnLevel))

	_, err = NewLogger(Config{Level: "loud"})
	assert.Error(t, err)
}

func TestNewLoggerFormat(t *testing.T) {
	_, err := NewLogger(Config{Format: "json"})
	assert.NoError(t, err)

	_, err = NewLogger(Config{Format: "xml"})
	assert.EqualError(t, err, `unknown log format "xml"`)
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flatcli.log")
	logger, err := NewLogger(Config{Level: "info", Format: "json", Filename: path, MaxSize: 1})
	require.NoError(t, err)

	logger.Info("hello", zap.String("key", "value"))
	require.NoError(t, logger.Sync())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"hello"`)
	assert.Contains(t, string(content), `"key":"value"`)
}

func TestInitLogger(t *testing.T) {
	prev := Logger
	defer func() { Logger = prev }()

	require.NoError(t, InitLogger(DefaultConfig()))
	assert.NotSame(t, prev, Logger)

	assert.Error(t, InitLogger(Config{Level: "nope"}))
}
