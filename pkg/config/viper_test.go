package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadReadsYAML(t *testing.T) {
	dir := t.TempDir()
	content := []byte("server:\n  port: 9000\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), content, 0o644))

	v, err := Load(dir, "config")
	require.NoError(t, err)
	assert.Equal(t, 9000, v.GetInt("server.port"))
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	v, err := Load(t.TempDir(), "config")
	require.NoError(t, err)
	require.NotNil(t, v)

	v.SetDefault("server.port", 5000)
	assert.Equal(t, 5000, v.GetInt("server.port"))
}
