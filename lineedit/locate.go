// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package lineedit

import (
	"strings"
	"time"

	"github.com/gemstones-dev/gemstones/pattern"
)

// FindOptions controls how lines are compared against a target.
type FindOptions struct {
	// Strip trims leading and trailing whitespace (terminator included)
	// from each line before comparing.
	Strip bool
	// Pattern treats the target as a shell glob instead of an exact string.
	Pattern bool
}

// GetLineContent returns line n exactly as stored, terminator included.
func (s *Store) GetLineContent(path string, n int) (content string, err error) {
	defer observe("get_line", time.Now(), &err)
	return s.getLineContent(path, n)
}

func (s *Store) getLineContent(path string, n int) (string, error) {
	lines, err := s.readLines(path)
	if err != nil {
		return "", err
	}
	if err := checkRange(n, len(lines)); err != nil {
		return "", err
	}
	return lines[n-1], nil
}

// LineHasContent reports whether line n equals target exactly, after
// trimming whitespace when strip is true. No pattern matching is done.
func (s *Store) LineHasContent(path string, n int, target string, strip bool) (ok bool, err error) {
	defer observe("line_has_content", time.Now(), &err)

	line, err := s.getLineContent(path, n)
	if err != nil {
		return false, err
	}
	if strip {
		line = strings.TrimSpace(line)
	}
	return line == target, nil
}

// FindLineNumber returns the number of the first line matching target.
// found is false when no line matches.
func (s *Store) FindLineNumber(path, target string, opts FindOptions) (n int, found bool, err error) {
	defer observe("find_line", time.Now(), &err)

	var first int
	err = s.eachMatch(path, target, opts, func(lineNumber int) bool {
		first = lineNumber
		return false
	})
	if err != nil {
		return 0, false, err
	}
	return first, first != 0, nil
}

// FindAllLineNumbers returns every matching line number in ascending order.
// It returns nil, never an empty slice, when nothing matches, so callers can
// tell "no result" apart from a result.
func (s *Store) FindAllLineNumbers(path, target string, opts FindOptions) (numbers []int, err error) {
	defer observe("find_all_lines", time.Now(), &err)

	err = s.eachMatch(path, target, opts, func(lineNumber int) bool {
		numbers = append(numbers, lineNumber)
		return true
	})
	if err != nil {
		return nil, err
	}
	return numbers, nil
}

// eachMatch calls fn with each matching 1-based line number until fn
// returns false.
func (s *Store) eachMatch(path, target string, opts FindOptions, fn func(int) bool) error {
	var m pattern.Matcher = pattern.Literal(target)
	if opts.Pattern {
		compiled, err := pattern.Compile(target)
		if err != nil {
			return err
		}
		m = compiled
	}

	lines, err := s.readLines(path)
	if err != nil {
		return err
	}

	for i, line := range lines {
		if opts.Strip {
			line = strings.TrimSpace(line)
		}
		if m.Match(line) && !fn(i+1) {
			return nil
		}
	}
	return nil
}
