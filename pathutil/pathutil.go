// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pathutil

import (
	"fmt"
	"os"
	"strings"
)

// NormalizePath rewrites Windows separators to forward slashes. An empty
// path stays empty; nothing else is cleaned or resolved.
func NormalizePath(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// CurrentDir returns the working directory with normalized separators.
func CurrentDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return NormalizePath(dir), nil
}

// HomeDir returns the current user's home directory.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return home, nil
}

// ExpandHome replaces a leading "~" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~\\") {
		return path, nil
	}
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return home + path[1:], nil
}
