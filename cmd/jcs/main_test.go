package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"jcs.mleku.dev"
	"jcs.mleku.dev/config"
)

func TestRunStdin(t *testing.T) {
	var out bytes.Buffer
	cfg := &config.C{Newline: true}
	require.NoError(t, run(cfg, nil, strings.NewReader(`{"b":2.0,"a":[1e1]}`), &out))
	require.Equal(t, "{\"a\":[10],\"b\":2}\n", out.String())
}

func TestRunFilesDigest(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.json")
	b := filepath.Join(dir, "b.json")
	require.NoError(t, os.WriteFile(a, []byte(`{ }`), 0o600))
	require.NoError(t, os.WriteFile(b, []byte(`[ 1.0 ]`), 0o600))
	var out bytes.Buffer
	cfg := &config.C{Digest: true}
	require.NoError(t, run(cfg, []string{a, b}, nil, &out))
	// sha256 of "{}" then of "[1]"
	require.True(t, strings.HasPrefix(out.String(),
		"44136fa355b3678a1146ad16f7e8649e94fb4fc21fe77e8310c060f61caaff8a"))
	require.Len(t, out.String(), 128)
}

func TestRunMalformed(t *testing.T) {
	var out bytes.Buffer
	err := run(&config.C{}, nil, strings.NewReader(`{"a":`), &out)
	require.True(t, errors.Is(err, jcs.ErrMalformedRawFragment))
	require.Contains(t, err.Error(), "stdin")
	require.Zero(t, out.Len())
}

func TestRunMissingFile(t *testing.T) {
	var out bytes.Buffer
	require.Error(t, run(&config.C{}, []string{filepath.Join(t.TempDir(), "nope.json")}, nil, &out))
}

func TestRunTooLarge(t *testing.T) {
	var out bytes.Buffer
	big := "[" + strings.Repeat("0,", 600000) + "0]"
	err := run(&config.C{MaxInput: 1}, nil, strings.NewReader(big), &out)
	require.Error(t, err)
	require.Contains(t, err.Error(), "larger than")
	require.NoError(t, run(&config.C{MaxInput: 2}, nil, strings.NewReader(big), &out))
}
