// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"path/filepath"
	"testing"

	"github.com/gemstones-dev/gemstones/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `# gemstones settings
encoding: utf-8 # keep in sync with the editors
writeMode: atomic

mcp:
  rateLimit: 10
  burst: 20
# trailing note
`

func TestSetValueReplacesLine(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "c.yaml", sampleConfig)

	require.NoError(t, SetValue(path, "encoding", "latin1"))
	require.NoError(t, SetValue(path, "mcp.burst", "5"))

	want := `# gemstones settings
encoding: latin1 # keep in sync with the editors
writeMode: atomic

mcp:
  rateLimit: 10
  burst: 5
# trailing note
`
	assert.Equal(t, want, testutil.ReadFile(t, path))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "latin1", s.Encoding)
	assert.Equal(t, 5, s.MCP.Burst)
}

func TestSetValueInsertsMissingKeys(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "c.yaml", "mcp:\n  burst: 20\noutput: default")

	require.NoError(t, SetValue(path, "mcp.rateLimit", "2.5"))
	require.NoError(t, SetValue(path, "debug", "1"))

	assert.Equal(t, "mcp:\n  burst: 20\n  rateLimit: 2.5\noutput: default\ndebug: true\n", testutil.ReadFile(t, path))
}

func TestSetValueCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "c.yaml")

	require.NoError(t, SetValue(path, "mcp.burst", "3"))
	require.NoError(t, SetValue(path, "terminator", `\r\n`))

	assert.Equal(t, "mcp:\n  burst: 3\nterminator: \"\\r\\n\"\n", testutil.ReadFile(t, path))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "\r\n", s.Terminator)
}

func TestSetValueRejects(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "c.yaml", sampleConfig)

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "colour", "red"},
		{"list key", "ignoreNames", "x"},
		{"not a bool", "debug", "sometimes"},
		{"not an int", "mcp.burst", "many"},
		{"fails validation", "writeMode", "sometimes"},
		{"unknown encoding", "encoding", "klingon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, SetValue(path, tt.key, tt.value), ErrInvalidConfig)
			assert.Equal(t, sampleConfig, testutil.ReadFile(t, path), "file must be untouched")
		})
	}
}

func TestSettableKeys(t *testing.T) {
	keys := SettableKeys()
	assert.Contains(t, keys, "encoding")
	assert.Contains(t, keys, "mcp.rateLimit")
	assert.NotContains(t, keys, "ignoreNames")
}
