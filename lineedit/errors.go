// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package lineedit

import (
	"errors"
	"fmt"

	"github.com/gemstones-dev/gemstones/pattern"
)

var (
	// ErrNotFound indicates the target file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrOutOfRange indicates a line number outside [1, line count].
	ErrOutOfRange = errors.New("line number out of range")

	// ErrInvalidPattern indicates a glob pattern that cannot be compiled.
	ErrInvalidPattern = pattern.ErrInvalidPattern

	// ErrUnknownEncoding indicates an encoding name that is not in the WHATWG index.
	ErrUnknownEncoding = errors.New("unknown encoding")
)

// LineRangeError reports a line number that does not address a line of the file.
type LineRangeError struct {
	Line  int
	Count int
}

func (e *LineRangeError) Error() string {
	return fmt.Sprintf("line %d out of range [1, %d]", e.Line, e.Count)
}

// Unwrap lets errors.Is(err, ErrOutOfRange) match.
func (e *LineRangeError) Unwrap() error {
	return ErrOutOfRange
}

func checkRange(line, count int) error {
	if line < 1 || line > count {
		return &LineRangeError{Line: line, Count: count}
	}
	return nil
}
