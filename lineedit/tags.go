// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package lineedit

import (
	"fmt"
	"time"

	"github.com/gemstones-dev/gemstones/metrics"
)

// TagSpan is an inclusive range of 1-based line numbers.
type TagSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ScanStatus is the outcome of a tag scan.
type ScanStatus int

const (
	// ScanBalanced means a balanced region was found.
	ScanBalanced ScanStatus = iota
	// ScanNoStartTag means neither tag appears at or after the start line.
	ScanNoStartTag
	// ScanMalformed means an end tag came before any start tag.
	ScanMalformed
	// ScanUnbalanced means the file ended before the counts matched.
	ScanUnbalanced
)

func (s ScanStatus) String() string {
	switch s {
	case ScanBalanced:
		return "balanced"
	case ScanNoStartTag:
		return "no_start_tag"
	case ScanMalformed:
		return "malformed"
	case ScanUnbalanced:
		return "unbalanced"
	default:
		return "unknown"
	}
}

// MarshalText renders the status by name.
func (s ScanStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a status name.
func (s *ScanStatus) UnmarshalText(text []byte) error {
	for _, st := range []ScanStatus{ScanBalanced, ScanNoStartTag, ScanMalformed, ScanUnbalanced} {
		if st.String() == string(text) {
			*s = st
			return nil
		}
	}
	return fmt.Errorf("unknown scan status %q", text)
}

// ScanResult is the detailed outcome of a tag scan. Span is only meaningful
// when Status is ScanBalanced.
type ScanResult struct {
	Span   TagSpan    `json:"span"`
	Status ScanStatus `json:"status"`
}

// OK reports whether a balanced region was found.
func (r ScanResult) OK() bool {
	return r.Status == ScanBalanced
}

// scanState holds the counters for a single scan.
type scanState struct {
	startTag, endTag rune
	startCount       int
	endCount         int
	startLine        int // 0 until the first start tag
	result           ScanResult
	finished         bool
}

// feed processes one character of line lineNumber.
func (st *scanState) feed(ch rune, lineNumber int) {
	switch ch {
	case st.startTag:
		st.startCount++
		if st.startLine == 0 {
			st.startLine = lineNumber
		}
	case st.endTag:
		if st.startLine == 0 {
			st.finish(ScanResult{Status: ScanMalformed})
			return
		}
		st.endCount++
	}

	if st.startLine != 0 && st.startCount == st.endCount {
		st.finish(ScanResult{
			Span:   TagSpan{Start: st.startLine, End: lineNumber},
			Status: ScanBalanced,
		})
	}
}

func (st *scanState) finish(r ScanResult) {
	st.result = r
	st.finished = true
}

// ScanLines finds the first balanced region of startTag/endTag characters at
// or after line startFrom (1-based; values below 1 mean 1).
//
// Counting is global rather than nest-aware: the region ends at the first
// character where the number of end tags seen equals the number of start
// tags, even mid-line. An end tag before any start tag stops the scan with
// ScanMalformed, even if later content would balance.
func ScanLines(lines []string, startTag, endTag rune, startFrom int) ScanResult {
	if startFrom < 1 {
		startFrom = 1
	}

	st := &scanState{startTag: startTag, endTag: endTag}
	for i := startFrom - 1; i < len(lines); i++ {
		for _, ch := range lines[i] {
			st.feed(ch, i+1)
			if st.finished {
				return st.result
			}
		}
	}

	if st.startLine == 0 {
		return ScanResult{Status: ScanNoStartTag}
	}
	return ScanResult{Status: ScanUnbalanced}
}

// ScanTags reads path and runs ScanLines over it.
func (s *Store) ScanTags(path string, startTag, endTag rune, startFrom int) (result ScanResult, err error) {
	defer observe("scan_tags", time.Now(), &err)

	lines, err := s.readLines(path)
	if err != nil {
		return ScanResult{}, err
	}

	result = ScanLines(lines, startTag, endTag, startFrom)
	metrics.RecordScan(result.Status.String())

	s.log(path, "scan_tags").Debug("scan finished",
		"start_from", startFrom, "status", result.Status.String(),
		"start", result.Span.Start, "end", result.Span.End)
	return result, nil
}

// FindEnclosingTags returns the first balanced span at or after startFrom.
// ok is false when no balanced region exists; the reason (no tags, end tag
// first, or end of file reached) is not reported. Use ScanTags for it.
func (s *Store) FindEnclosingTags(path string, startTag, endTag rune, startFrom int) (span TagSpan, ok bool, err error) {
	result, err := s.ScanTags(path, startTag, endTag, startFrom)
	if err != nil {
		return TagSpan{}, false, err
	}
	if !result.OK() {
		return TagSpan{}, false, nil
	}
	return result.Span, true, nil
}
