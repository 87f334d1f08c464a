// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package testutil

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

func TestCaptureOutput(t *testing.T) {
	tests := []struct {
		name string
		fn   func() error
		want string
	}{
		{"single line", func() error { fmt.Println("hello"); return nil }, "hello\n"},
		{"no output", func() error { return nil }, ""},
		{"output before error", func() error { fmt.Print("partial"); return errors.New("boom") }, "partial"},
		{"large output", func() error { fmt.Print(strings.Repeat("x", 100000)); return nil }, strings.Repeat("x", 100000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CaptureOutput(t, tt.fn); got != tt.want {
				t.Errorf("CaptureOutput() length %d, want %d", len(got), len(tt.want))
			}
		})
	}
}

func TestWriteAndReadFile(t *testing.T) {
	dir := t.TempDir()

	path := WriteFile(t, dir, filepath.Join("nested", "a.txt"), "content")
	if path != filepath.Join(dir, "nested", "a.txt") {
		t.Errorf("unexpected path %q", path)
	}
	if got := ReadFile(t, path); got != "content" {
		t.Errorf("ReadFile() = %q, want %q", got, "content")
	}
}

func TestWriteLines(t *testing.T) {
	path := WriteLines(t, t.TempDir(), "lines.txt", "a", "b", "c")
	if got := ReadFile(t, path); got != "a\nb\nc" {
		t.Errorf("WriteLines() wrote %q", got)
	}
}

func TestContains(t *testing.T) {
	if !Contains("line 3", "3") {
		t.Error("expected substring match")
	}
	if Contains("line 3", "4") {
		t.Error("unexpected substring match")
	}
}
