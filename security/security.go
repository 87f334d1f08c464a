// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package security

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
)

var (
	// ErrInvalidPath is returned when a path is empty or cannot be resolved.
	ErrInvalidPath = errors.New("invalid path")

	// ErrPathTraversal is returned when a path escapes through a ".." element
	// or lies outside the allowed base directories.
	ErrPathTraversal = errors.New("path traversal detected")

	// ErrInsecureFilePermissions is returned when a file is group or world writable.
	ErrInsecureFilePermissions = errors.New("insecure file permissions")
)

// hasParentRef reports whether any element of path is "..".
// Names that merely contain two dots, such as "notes..txt", are allowed.
func hasParentRef(path string) bool {
	parts := strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	return slices.Contains(parts, "..")
}

// ValidatePath checks that a path is non-empty, has no ".." element and
// resolves cleanly. The file does not need to exist yet.
func ValidatePath(path string) error {
	if path == "" {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	if hasParentRef(path) {
		return fmt.Errorf("%w: path contains parent directory reference", ErrPathTraversal)
	}

	_, err := resolve(path)
	return err
}

// resolve returns the absolute, symlink-resolved form of path. Paths that do
// not exist yet resolve to their cleaned absolute form.
func resolve(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: cannot resolve path: %w", ErrInvalidPath, err)
	}
	absPath = filepath.Clean(absPath)

	realPath, err := filepath.EvalSymlinks(absPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("%w: cannot resolve symbolic links: %w", ErrInvalidPath, err)
		}
		realPath = absPath
	}

	return realPath, nil
}

// ValidatePathWithinBases validates path and ensures it resolves to a location
// inside one of allowedBases. With no bases only ValidatePath applies.
// Returns the resolved absolute path.
func ValidatePathWithinBases(path string, allowedBases ...string) (string, error) {
	if err := ValidatePath(path); err != nil {
		return "", err
	}

	realPath, err := resolve(path)
	if err != nil {
		return "", err
	}

	if len(allowedBases) == 0 {
		return realPath, nil
	}

	for _, base := range allowedBases {
		realBase, err := resolve(base)
		if err != nil {
			continue // skip bases we can't resolve
		}
		if realPath == realBase || strings.HasPrefix(realPath, realBase+string(filepath.Separator)) {
			return realPath, nil
		}
	}

	return "", fmt.Errorf("%w: path is outside allowed directories", ErrPathTraversal)
}

// ValidateFilePermissions returns ErrInsecureFilePermissions when path is
// writable by group or others. Always nil on Windows.
func ValidateFilePermissions(path string) error {
	if runtime.GOOS == "windows" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	if info.Mode().Perm()&0o022 != 0 {
		return ErrInsecureFilePermissions
	}

	return nil
}
