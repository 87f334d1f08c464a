// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package lineedit

// ReadLines reads path with the default store.
func ReadLines(path string) ([]string, error) {
	return Default().ReadLines(path)
}

// WriteLines replaces the content of path with the default store.
func WriteLines(path string, lines []string) error {
	return Default().WriteLines(path, lines)
}

// SetLine replaces line n of path with the default store.
func SetLine(path string, n int, content string, appendTerminator bool) error {
	return Default().SetLine(path, n, content, appendTerminator)
}

// PrependToLine prepends prefix to line n of path with the default store.
func PrependToLine(path string, n int, prefix string) error {
	return Default().PrependToLine(path, n, prefix)
}

// PrependToLineRange prepends prefix to lines [start, end] with the default store.
func PrependToLineRange(path string, start, end int, prefix string) error {
	return Default().PrependToLineRange(path, start, end, prefix)
}

// GetLineContent returns line n of path with the default store.
func GetLineContent(path string, n int) (string, error) {
	return Default().GetLineContent(path, n)
}

// LineHasContent compares line n of path with target using the default store.
func LineHasContent(path string, n int, target string, strip bool) (bool, error) {
	return Default().LineHasContent(path, n, target, strip)
}

// FindLineNumber finds the first matching line with the default store.
func FindLineNumber(path, target string, opts FindOptions) (int, bool, error) {
	return Default().FindLineNumber(path, target, opts)
}

// FindAllLineNumbers finds all matching lines with the default store.
func FindAllLineNumbers(path, target string, opts FindOptions) ([]int, error) {
	return Default().FindAllLineNumbers(path, target, opts)
}

// ScanTags scans path for a balanced tag region with the default store.
func ScanTags(path string, startTag, endTag rune, startFrom int) (ScanResult, error) {
	return Default().ScanTags(path, startTag, endTag, startFrom)
}

// FindEnclosingTags finds a balanced tag span with the default store.
func FindEnclosingTags(path string, startTag, endTag rune, startFrom int) (TagSpan, bool, error) {
	return Default().FindEnclosingTags(path, startTag, endTag, startFrom)
}
