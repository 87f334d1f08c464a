// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package editor opens a file in the user's editor, positioned at a line
// when the editor supports it.
package editor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gemstones-dev/gemstones/platform"
)

// ErrNoEditor is returned when no usable editor is configured or installed.
var ErrNoEditor = errors.New("no editor found; set EDITOR or VISUAL")

// lookPath is swapped in tests.
var lookPath = exec.LookPath

// editorNamePattern allows bare command names only.
var editorNamePattern = regexp.MustCompile(`^[a-zA-Z0-9._+-]+$`)

// Detect returns the editor to use: EDITOR, then VISUAL, then the first
// installed candidate for the platform. Empty when none is found.
func Detect() string {
	for _, env := range []string{"EDITOR", "VISUAL"} {
		if e := validate(os.Getenv(env)); e != "" {
			return e
		}
	}
	for _, c := range candidates() {
		if _, err := lookPath(c); err == nil {
			return c
		}
	}
	return ""
}

// validate accepts a bare command name or an absolute path, either of which
// must resolve to an executable.
func validate(editor string) string {
	if editor == "" {
		return ""
	}
	if !filepath.IsAbs(editor) {
		if strings.ContainsAny(editor, `/\`) || !editorNamePattern.MatchString(editor) {
			return ""
		}
	}
	if _, err := lookPath(editor); err != nil {
		return ""
	}
	return editor
}

func candidates() []string {
	switch {
	case platform.IsWindows():
		return []string{"code", "notepad++", "notepad"}
	case platform.IsMacOS():
		return []string{"code", "subl", "nano", "vim", "open"}
	default:
		return []string{"code", "subl", "nano", "vim", "vi", "xdg-open"}
	}
}

// Args returns the arguments that open path at line in editor. Line 0 or an
// editor with no known line syntax opens the file at the top.
func Args(editor, path string, line int) []string {
	if line < 1 {
		return []string{path}
	}

	switch strings.TrimSuffix(strings.ToLower(filepath.Base(editor)), ".exe") {
	case "code", "code-insiders", "codium":
		return []string{"--goto", fmt.Sprintf("%s:%d", path, line)}
	case "vim", "vi", "nvim", "nano", "emacs", "micro", "kak":
		return []string{fmt.Sprintf("+%d", line), path}
	case "subl", "hx", "zed":
		return []string{fmt.Sprintf("%s:%d", path, line)}
	case "notepad++":
		return []string{fmt.Sprintf("-n%d", line), path}
	default:
		return []string{path}
	}
}

// Options configures Open.
type Options struct {
	// Editor overrides detection.
	Editor string
	// Line positions the cursor, 1-based. 0 opens at the top.
	Line int
	// Wait blocks until the editor exits.
	Wait bool
}

// Open starts the editor on path, attached to the terminal.
func Open(ctx context.Context, path string, opts Options) error {
	ed := opts.Editor
	if ed == "" {
		ed = Detect()
	}
	if ed == "" {
		return ErrNoEditor
	}

	// #nosec G204 -- editor is validated or chosen by the user
	cmd := exec.CommandContext(ctx, ed, Args(ed, path, opts.Line)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if opts.Wait {
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%s failed: %w", ed, err)
		}
		return nil
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s: %w", ed, err)
	}
	return nil
}
