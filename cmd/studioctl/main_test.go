package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"art_studio/internal/client/studioapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	index, dir, err := parseMove([]string{"2", "up"})
	require.NoError(t, err)
	assert.Equal(t, 2, index)
	assert.Equal(t, studioapi.Up, dir)

	_, dir, err = parseMove([]string{"0", "down"})
	require.NoError(t, err)
	assert.Equal(t, studioapi.Down, dir)

	for _, args := range [][]string{nil, {"x", "up"}, {"1", "left"}, {"1"}} {
		_, _, err := parseMove(args)
		assert.Error(t, err, "%v", args)
	}
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	file := filepath.Join(t.TempDir(), "session.json")

	assert.Equal(t, 2, run(nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "usage: studioctl")

	stderr.Reset()
	assert.Equal(t, 2, run([]string{"-session", file, "paint"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), `unknown command "paint"`)
}

func TestRun_ProtectedCommandWithoutLogin(t *testing.T) {
	var stdout, stderr bytes.Buffer
	file := filepath.Join(t.TempDir(), "session.json")

	code := run([]string{"-api", "http://127.0.0.1:1", "-session", file, "contacts"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "not logged in (login_required)")
	assert.Empty(t, stdout.String())
}
