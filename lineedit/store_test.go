// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package lineedit

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gemstones-dev/gemstones/security"
	"github.com/gemstones-dev/gemstones/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemStore(t *testing.T, opts Options) (*Store, afero.Fs) {
	t.Helper()
	memFs := afero.NewMemMapFs()
	opts.Fs = memFs
	s, err := NewStore(opts)
	require.NoError(t, err)
	return s, memFs
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", nil},
		{"single without terminator", "a", []string{"a"}},
		{"single with terminator", "a\n", []string{"a\n"}},
		{"last line without terminator", "a\nb", []string{"a\n", "b"}},
		{"blank lines", "\n\n", []string{"\n", "\n"}},
		{"crlf kept", "a\r\nb\r\n", []string{"a\r\n", "b\r\n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitLines(tt.text))
		})
	}
}

func TestReadWriteLinesRoundTrip(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "f.txt", "one\r\ntwo\nthree")

	lines, err := ReadLines(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one\r\n", "two\n", "three"}, lines)

	require.NoError(t, WriteLines(path, lines))
	assert.Equal(t, "one\r\ntwo\nthree", testutil.ReadFile(t, path))
}

func TestWriteLinesReplacesAndCreates(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteFile(t, dir, "f.txt", "old content that is longer\n")

	require.NoError(t, WriteLines(path, []string{"new\n"}))
	assert.Equal(t, "new\n", testutil.ReadFile(t, path))

	created := filepath.Join(dir, "created.txt")
	require.NoError(t, WriteLines(created, []string{"a\n", "b"}))
	assert.Equal(t, "a\nb", testutil.ReadFile(t, created))
}

func TestReadLinesMissingFile(t *testing.T) {
	_, err := ReadLines(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestParentRelativePaths(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	testutil.WriteLines(t, root, "outside.txt", "a", "b")
	t.Chdir(sub)

	lines, err := ReadLines("../outside.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"a\n", "b"}, lines)

	require.NoError(t, SetLine("../outside.txt", 2, "c", false))
	assert.Equal(t, "a\nc", testutil.ReadFile(t, filepath.Join(root, "outside.txt")))
}

func TestStoreCleansPaths(t *testing.T) {
	s, memFs := newMemStore(t, Options{})
	require.NoError(t, afero.WriteFile(memFs, "/work/f.txt", []byte("x\ny\n"), 0o644))

	lines, err := s.ReadLines("/work/sub/../f.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"x\n", "y\n"}, lines)

	require.NoError(t, s.WriteLines("/work/./sub/../g.txt", []string{"z\n"}))
	data, err := afero.ReadFile(memFs, "/work/g.txt")
	require.NoError(t, err)
	assert.Equal(t, "z\n", string(data))

	_, err = s.ReadLines("")
	assert.ErrorIs(t, err, security.ErrInvalidPath)
}

func TestAtomicWriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteLines(t, dir, "f.txt", "a", "b")

	require.NoError(t, SetLine(path, 1, "z", true))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "f.txt", entries[0].Name())
}

func TestWritePreservesPermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not preserved on Windows")
	}

	path := testutil.WriteLines(t, t.TempDir(), "f.txt", "a", "b")
	require.NoError(t, os.Chmod(path, 0600))

	require.NoError(t, SetLine(path, 2, "c", false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestWriteModes(t *testing.T) {
	for _, mode := range []WriteMode{WriteAtomic, WriteInPlace} {
		t.Run(mode.String(), func(t *testing.T) {
			s, memFs := newMemStore(t, Options{WriteMode: mode})
			require.NoError(t, afero.WriteFile(memFs, "/work/f.txt", []byte("a\nb\nc\n"), 0644))

			require.NoError(t, s.SetLine("/work/f.txt", 2, "B", true))

			data, err := afero.ReadFile(memFs, "/work/f.txt")
			require.NoError(t, err)
			assert.Equal(t, "a\nB\nc\n", string(data))
			assert.Equal(t, mode, s.WriteMode())
		})
	}
}

func TestParseWriteMode(t *testing.T) {
	tests := []struct {
		input   string
		want    WriteMode
		wantErr bool
	}{
		{"", WriteAtomic, false},
		{"atomic", WriteAtomic, false},
		{"In-Place", WriteInPlace, false},
		{"inplace", WriteInPlace, false},
		{"append", WriteAtomic, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWriteMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodingLatin1(t *testing.T) {
	s, memFs := newMemStore(t, Options{Encoding: "latin1"})
	assert.Equal(t, "windows-1252", s.Encoding())

	// "café\nthé\n" in latin1
	raw := []byte{'c', 'a', 'f', 0xE9, '\n', 't', 'h', 0xE9, '\n'}
	require.NoError(t, afero.WriteFile(memFs, "/f.txt", raw, 0644))

	lines, err := s.ReadLines("/f.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"café\n", "thé\n"}, lines)

	require.NoError(t, s.PrependToLine("/f.txt", 2, "# "))

	data, err := afero.ReadFile(memFs, "/f.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte{'c', 'a', 'f', 0xE9, '\n', '#', ' ', 't', 'h', 0xE9, '\n'}, data)
}

func TestUTF8PassesInvalidBytesThrough(t *testing.T) {
	s, memFs := newMemStore(t, Options{Encoding: "UTF-8"})
	assert.Equal(t, DefaultEncoding, s.Encoding())

	raw := []byte{'a', 0xFF, '\n', 'b', '\n'}
	require.NoError(t, afero.WriteFile(memFs, "/f.txt", raw, 0644))

	require.NoError(t, s.SetLine("/f.txt", 2, "c", true))

	data, err := afero.ReadFile(memFs, "/f.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte{'a', 0xFF, '\n', 'c', '\n'}, data)
}

func TestUnknownEncoding(t *testing.T) {
	_, err := NewStore(Options{Encoding: "klingon"})
	assert.True(t, errors.Is(err, ErrUnknownEncoding))
}

func TestSetDefault(t *testing.T) {
	s, memFs := newMemStore(t, Options{})
	SetDefault(s)
	t.Cleanup(func() { SetDefault(nil) })

	require.NoError(t, afero.WriteFile(memFs, "/only/in/memory.txt", []byte("x\n"), 0644))

	lines, err := ReadLines("/only/in/memory.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"x\n"}, lines)

	SetDefault(nil)
	assert.NotSame(t, s, Default())
}
