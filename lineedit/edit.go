// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package lineedit

import "time"

// SetLine replaces line n (1-based) with content, adding the store's
// terminator when appendTerminator is true. The number of lines is unchanged.
// Other lines are written back byte for byte.
func (s *Store) SetLine(path string, n int, content string, appendTerminator bool) (err error) {
	defer observe("set_line", time.Now(), &err)

	lines, err := s.readLines(path)
	if err != nil {
		return err
	}
	if err := checkRange(n, len(lines)); err != nil {
		return err
	}

	if appendTerminator {
		content += s.terminator
	}
	lines[n-1] = content

	s.log(path, "set_line").Debug("replacing line", "line", n, "lines", len(lines))
	return s.writeLines(path, lines)
}

// PrependToLine inserts prefix at the start of line n. The line's own
// terminator is kept because it is part of the current content.
func (s *Store) PrependToLine(path string, n int, prefix string) (err error) {
	defer observe("prepend_line", time.Now(), &err)
	return s.prependToLine(path, n, prefix)
}

func (s *Store) prependToLine(path string, n int, prefix string) error {
	current, err := s.getLineContent(path, n)
	if err != nil {
		return err
	}
	return s.SetLine(path, n, prefix+current, false)
}

// PrependToLineRange prepends prefix to every line in [start, end], in
// ascending order. Each line is a separate read and rewrite of the file, so
// a failure part way leaves the earlier lines already updated. An empty range
// (start > end) does nothing.
func (s *Store) PrependToLineRange(path string, start, end int, prefix string) (err error) {
	defer observe("prepend_line_range", time.Now(), &err)

	s.log(path, "prepend_line_range").Debug("prepending to range", "start", start, "end", end)
	for n := start; n <= end; n++ {
		if err := s.prependToLine(path, n, prefix); err != nil {
			return err
		}
	}
	return nil
}
