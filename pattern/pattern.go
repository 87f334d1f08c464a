// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package pattern

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gobwas/glob"
)

// ErrInvalidPattern is returned when a glob pattern cannot be compiled.
var ErrInvalidPattern = errors.New("invalid glob pattern")

// Matcher reports whether a string matches a compiled pattern.
type Matcher interface {
	Match(s string) bool
}

// Compile compiles a shell-glob pattern with fnmatch rules: "*", "?",
// "[abc]", "[a-z]" and "[!abc]" are operators and every other character,
// braces and backslashes included, matches itself. An unclosed "[" is
// literal. No separators are declared, so "*" also matches "/".
func Compile(pattern string) (Matcher, error) {
	translated, err := translate(pattern)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", pattern, err)
	}
	g, err := glob.Compile(translated)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPattern, pattern, err)
	}
	return g, nil
}

// Match compiles pattern and matches s against it in one call.
func Match(pattern, s string) (bool, error) {
	m, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return m.Match(s), nil
}

// Literal matches by exact string equality.
type Literal string

// Match implements Matcher.
func (l Literal) Match(s string) bool {
	return string(l) == s
}

// matchAll is the "*" fast path.
type matchAll struct{}

func (matchAll) Match(string) bool { return true }

// All returns a Matcher accepting every string.
func All() Matcher {
	return matchAll{}
}

// ForName compiles pattern for filename matching, short-circuiting "*".
func ForName(pattern string) (Matcher, error) {
	if pattern == "*" {
		return All(), nil
	}
	return Compile(pattern)
}

// Skipper decides whether a path should be left out of a walk or copy.
type Skipper interface {
	Skip(path string) bool
}

// SkipFunc adapts a function to Skipper.
type SkipFunc func(path string) bool

// Skip implements Skipper.
func (f SkipFunc) Skip(path string) bool {
	return f(path)
}

// SkipNames skips paths whose base name is one of names.
func SkipNames(names ...string) Skipper {
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return SkipFunc(func(path string) bool {
		_, ok := set[filepath.Base(path)]
		return ok
	})
}

// SkipMatching skips paths whose base name matches any of the patterns.
func SkipMatching(patterns ...string) (Skipper, error) {
	matchers := make([]Matcher, 0, len(patterns))
	for _, p := range patterns {
		m, err := Compile(p)
		if err != nil {
			return nil, err
		}
		matchers = append(matchers, m)
	}
	return SkipFunc(func(path string) bool {
		base := filepath.Base(path)
		for _, m := range matchers {
			if m.Match(base) {
				return true
			}
		}
		return false
	}), nil
}

// SkipAny combines skippers; a path is skipped if any of them skips it.
// Nil skippers are ignored.
func SkipAny(skippers ...Skipper) Skipper {
	return SkipFunc(func(path string) bool {
		for _, s := range skippers {
			if s != nil && s.Skip(path) {
				return true
			}
		}
		return false
	})
}
