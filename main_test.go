package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	errors2 "github.com/savid/latstats/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPrintsStats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latency.txt")
	require.NoError(t, os.WriteFile(path, []byte("1.0\n2.0\n3.0\n4.0\n5.0\n"), 0o600))

	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-log_level", "warn", path}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "fastest: 1.0ms\nslowest: 5.0ms\naverage: 3.0ms\n median: 3.0ms\n    99%: 5.0ms\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunExactMeanFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latency.txt")
	require.NoError(t, os.WriteFile(path, []byte("0.00001\n0.00001\n"), 0o600))

	var scaled, exact bytes.Buffer

	require.NoError(t, run(context.Background(), []string{path}, &scaled, &bytes.Buffer{}))
	require.NoError(t, run(context.Background(), []string{"-exact_mean", path}, &exact, &bytes.Buffer{}))

	assert.Contains(t, scaled.String(), "average: 0.0ms\n")
	assert.Contains(t, exact.String(), "average: 1e-05ms\n")
}

func TestRunMissingArgument(t *testing.T) {
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), nil, &stdout, &stderr)

	assert.ErrorIs(t, err, errors2.ErrUsage)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "enter filename")
	assert.Contains(t, stderr.String(), "usage: latstats")
}

func TestRunInvalidLogLevel(t *testing.T) {
	var stderr bytes.Buffer

	err := run(context.Background(), []string{"-log_level", "loud", "x.txt"}, &bytes.Buffer{}, &stderr)

	assert.ErrorIs(t, err, errors2.ErrUsage)
	assert.Contains(t, stderr.String(), "invalid log level")
}

func TestRunUnknownFlag(t *testing.T) {
	err := run(context.Background(), []string{"-bogus"}, &bytes.Buffer{}, &bytes.Buffer{})

	assert.ErrorIs(t, err, errors2.ErrUsage)
}

func TestRunMissingFile(t *testing.T) {
	var stdout bytes.Buffer

	err := run(context.Background(), []string{filepath.Join(t.TempDir(), "gone.txt")}, &stdout, &bytes.Buffer{})

	assert.ErrorIs(t, err, errors2.ErrIO)
	assert.Empty(t, stdout.String())
}
