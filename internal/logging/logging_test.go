package logging

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCLIBuildsLogger(t *testing.T) {
	logger, err := NewCLI(false)
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Info("ready")
}

func TestNewWithFileSink(t *testing.T) {
	dir := t.TempDir()
	logger, err := New(Config{Level: "debug", FilePath: filepath.Join(dir, "vdjmatch.log")})
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Debug("wrote a line")
}

func TestParseLevel(t *testing.T) {
	assert.NotPanics(t, func() {
		_ = parseLevel("bogus")
	})
}
