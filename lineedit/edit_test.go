// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package lineedit

import (
	"errors"
	"testing"

	"github.com/gemstones-dev/gemstones/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fiveLines = []string{"line 1", "line 2", "line 3", "line 4", "line 5"}

func TestSetLine(t *testing.T) {
	tests := []struct {
		name             string
		line             int
		content          string
		appendTerminator bool
		want             string
	}{
		{"middle with terminator", 3, "line x", true, "line 1\nline 2\nline x\nline 4\nline 5"},
		{"middle verbatim joins next line", 3, "line x", false, "line 1\nline 2\nline xline 4\nline 5"},
		{"first line", 1, "top", true, "top\nline 2\nline 3\nline 4\nline 5"},
		{"last line gains terminator", 5, "end", true, "line 1\nline 2\nline 3\nline 4\nend\n"},
		{"last line verbatim", 5, "end", false, "line 1\nline 2\nline 3\nline 4\nend"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.WriteLines(t, t.TempDir(), "f.txt", fiveLines...)

			require.NoError(t, SetLine(path, tt.line, tt.content, tt.appendTerminator))
			assert.Equal(t, tt.want, testutil.ReadFile(t, path))
		})
	}
}

func TestSetLineChangesOnlyTargetLine(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "f.txt", "a\r\n  b\t\n\nc\nd")

	before, err := ReadLines(path)
	require.NoError(t, err)

	for k := 1; k <= len(before); k++ {
		require.NoError(t, SetLine(path, k, "!"+before[k-1], false))

		after, err := ReadLines(path)
		require.NoError(t, err)
		for i := range after {
			if i == k-1 {
				continue
			}
			assert.Equal(t, before[i], after[i], "line %d changed when editing line %d", i+1, k)
		}
		// restore
		require.NoError(t, WriteLines(path, before))
	}
}

func TestSetLineOutOfRange(t *testing.T) {
	path := testutil.WriteLines(t, t.TempDir(), "f.txt", fiveLines...)

	for _, n := range []int{0, -1, 6} {
		err := SetLine(path, n, "x", true)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrOutOfRange)

		var rangeErr *LineRangeError
		require.True(t, errors.As(err, &rangeErr))
		assert.Equal(t, n, rangeErr.Line)
		assert.Equal(t, 5, rangeErr.Count)
	}

	assert.Equal(t, "line 1\nline 2\nline 3\nline 4\nline 5", testutil.ReadFile(t, path))
}

func TestPrependToLine(t *testing.T) {
	path := testutil.WriteLines(t, t.TempDir(), "f.txt", fiveLines...)

	for _, n := range []int{2, 3, 4} {
		original, err := GetLineContent(path, n)
		require.NoError(t, err)

		require.NoError(t, PrependToLine(path, n, "//"))

		got, err := GetLineContent(path, n)
		require.NoError(t, err)
		assert.Equal(t, "//"+original, got)
	}

	for n, want := range map[int]string{1: "line 1", 2: "//line 2", 3: "//line 3", 4: "//line 4", 5: "line 5"} {
		ok, err := LineHasContent(path, n, want, true)
		require.NoError(t, err)
		assert.True(t, ok, "line %d should be %q", n, want)
	}
}

func TestPrependToLineKeepsCRLF(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "f.txt", "a\r\nb\r\n")

	require.NoError(t, PrependToLine(path, 1, "# "))
	assert.Equal(t, "# a\r\nb\r\n", testutil.ReadFile(t, path))
}

func TestPrependToLineRange(t *testing.T) {
	path := testutil.WriteLines(t, t.TempDir(), "f.txt", fiveLines...)

	require.NoError(t, PrependToLineRange(path, 2, 4, "//"))

	assert.Equal(t, "line 1\n//line 2\n//line 3\n//line 4\nline 5", testutil.ReadFile(t, path))
}

func TestPrependToLineRangeMatchesSingleCalls(t *testing.T) {
	dir := t.TempDir()
	ranged := testutil.WriteLines(t, dir, "ranged.txt", fiveLines...)
	single := testutil.WriteLines(t, dir, "single.txt", fiveLines...)

	require.NoError(t, PrependToLineRange(ranged, 1, 5, "> "))
	for n := 1; n <= 5; n++ {
		require.NoError(t, PrependToLine(single, n, "> "))
	}

	assert.Equal(t, testutil.ReadFile(t, single), testutil.ReadFile(t, ranged))
}

func TestPrependToLineRangeEdges(t *testing.T) {
	t.Run("empty range", func(t *testing.T) {
		path := testutil.WriteLines(t, t.TempDir(), "f.txt", fiveLines...)

		require.NoError(t, PrependToLineRange(path, 4, 2, "//"))
		assert.Equal(t, "line 1\nline 2\nline 3\nline 4\nline 5", testutil.ReadFile(t, path))
	})

	t.Run("range past end applies earlier lines then fails", func(t *testing.T) {
		path := testutil.WriteLines(t, t.TempDir(), "f.txt", fiveLines...)

		err := PrependToLineRange(path, 4, 6, "//")
		assert.ErrorIs(t, err, ErrOutOfRange)
		assert.Equal(t, "line 1\nline 2\nline 3\n//line 4\n//line 5", testutil.ReadFile(t, path))
	})
}
