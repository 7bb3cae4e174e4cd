package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// go test -run ^TestVersion$ ./cmd/sdengine -count 1
func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "sdengine dev\n", out)
}

// go test -run ^TestRun$ ./cmd/sdengine -count 1
func TestRun(t *testing.T) {
	out, err := execute(t, "run", "--frames", "6", "--spawn", "10", "--log-level", "off", "--console=false")
	require.NoError(t, err)
	// Ten spawned on frame 0, one deleted on frame 3.
	assert.Contains(t, out, "frames=6 entities=9 draws=57 batches=6")
}

// go test -run ^TestRunRejectsBadConfig$ ./cmd/sdengine -count 1
func TestRunRejectsBadConfig(t *testing.T) {
	_, err := execute(t, "run", "--frames", "1", "--log-level", "loud")
	require.Error(t, err)

	t.Setenv("SD_FIXED_DELTA", "-1")
	_, err = execute(t, "run", "--frames", "1")
	require.Error(t, err)
}
