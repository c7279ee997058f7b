package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(`# comment
JCS_LOG_LEVEL=debug

export JCS_DIGEST = true
JCS_APP_NAME="canon"
not a setting
`), 0o600))
	e, err := GetEnv(path)
	require.NoError(t, err)
	require.Equal(t, Env{
		"JCS_LOG_LEVEL": "debug",
		"JCS_DIGEST":    "true",
		"JCS_APP_NAME":  "canon",
	}, e)
	v, ok := e.LookupEnv("JCS_DIGEST")
	require.True(t, ok)
	require.Equal(t, "true", v)
	_, ok = e.LookupEnv("JCS_PPROF")
	require.False(t, ok)
}

func TestGetEnvMissing(t *testing.T) {
	_, err := GetEnv(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}
