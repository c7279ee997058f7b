package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("JCS_PROFILE", t.TempDir())
	cfg, err := New()
	require.NoError(t, err)
	require.Equal(t, "jcs", cfg.AppName)
	require.Equal(t, "info", cfg.LogLevel)
	require.False(t, cfg.Digest)
	require.True(t, cfg.Newline)
	require.Equal(t, 64, cfg.MaxInput)
}

func TestNewEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("JCS_DIGEST=true\nJCS_LOG_LEVEL=trace\n"), 0o600))
	t.Setenv("JCS_PROFILE", dir)
	t.Setenv("JCS_LOG_LEVEL", "warn")
	cfg, err := New()
	require.NoError(t, err)
	require.True(t, cfg.Digest)
	// the environment wins over the file
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestPrintEnv(t *testing.T) {
	var buf bytes.Buffer
	PrintEnv(&C{AppName: "jcs", Profile: "/p", LogLevel: "info", Newline: true}, &buf)
	require.Equal(t, "JCS_APP_NAME=jcs\n"+
		"JCS_DIGEST=false\n"+
		"JCS_LOG_LEVEL=info\n"+
		"JCS_MAX_INPUT=0\n"+
		"JCS_NEWLINE=true\n"+
		"JCS_PPROF=false\n"+
		"JCS_PROFILE=/p\n", buf.String())
}
