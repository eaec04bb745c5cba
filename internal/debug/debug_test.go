package debug

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_DisabledWithoutEnv(t *testing.T) {
	t.Setenv(EnvVar, "")
	require.NoError(t, Close())

	l := Logger()
	assert.False(t, l.Debug().Enabled())
}

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "debug.log")
	require.NoError(t, Init(path))
	t.Cleanup(func() { _ = Close() })

	l := Logger()
	l.Debug().Str("panel", "root").Msg("drained")
	require.NoError(t, Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"panel":"root"`)
	assert.Contains(t, string(data), `"message":"drained"`)
}

func TestLogger_InitFromEnv(t *testing.T) {
	require.NoError(t, Close())
	path := filepath.Join(t.TempDir(), "env.log")
	t.Setenv(EnvVar, path)
	t.Cleanup(func() { _ = Close() })

	l := Logger()
	assert.True(t, l.Debug().Enabled())
	_, err := os.Stat(path)
	assert.NoError(t, err)
}
