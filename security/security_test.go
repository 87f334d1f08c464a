// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestValidatePath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{"absolute path", "/tmp/test.txt", nil},
		{"relative path", "notes.txt", nil},
		{"current directory", ".", nil},
		{"dots inside a name", "release..notes.txt", nil},
		{"empty path", "", ErrInvalidPath},
		{"parent traversal", "../../../etc/passwd", ErrPathTraversal},
		{"embedded traversal", "a/b/../../c", ErrPathTraversal},
		{"windows traversal", `a\..\b`, ErrPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(tt.path)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidatePath(%q) unexpected error: %v", tt.path, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidatePath(%q) = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePathWithinBases(t *testing.T) {
	base := t.TempDir()
	other := t.TempDir()

	inside := filepath.Join(base, "src", "main.go")
	outside := filepath.Join(other, "main.go")

	if _, err := ValidatePathWithinBases(inside, base); err != nil {
		t.Errorf("expected path inside base to be allowed: %v", err)
	}

	if _, err := ValidatePathWithinBases(outside, base); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("expected ErrPathTraversal for path outside base, got %v", err)
	}

	if _, err := ValidatePathWithinBases(outside, base, other); err != nil {
		t.Errorf("expected path to be allowed by second base: %v", err)
	}

	got, err := ValidatePathWithinBases(outside)
	if err != nil {
		t.Fatalf("no bases should only validate: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("expected absolute path, got %q", got)
	}
}

func TestValidatePathWithinBases_Symlink(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on Windows")
	}

	base := t.TempDir()
	outsideDir := t.TempDir()
	target := filepath.Join(outsideDir, "secret.txt")
	if err := os.WriteFile(target, []byte("x"), 0600); err != nil {
		t.Fatal(err)
	}

	link := filepath.Join(base, "link.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}

	if _, err := ValidatePathWithinBases(link, base); !errors.Is(err, ErrPathTraversal) {
		t.Errorf("symlink escaping the base should be rejected, got %v", err)
	}
}

func TestValidateFilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not checked on Windows")
	}

	dir := t.TempDir()

	secure := filepath.Join(dir, "secure.yaml")
	if err := os.WriteFile(secure, []byte("a: 1"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := ValidateFilePermissions(secure); err != nil {
		t.Errorf("expected 0600 to be accepted: %v", err)
	}

	open := filepath.Join(dir, "open.yaml")
	if err := os.WriteFile(open, []byte("a: 1"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(open, 0666); err != nil {
		t.Fatal(err)
	}
	if err := ValidateFilePermissions(open); !errors.Is(err, ErrInsecureFilePermissions) {
		t.Errorf("expected ErrInsecureFilePermissions, got %v", err)
	}

	if err := ValidateFilePermissions(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}
