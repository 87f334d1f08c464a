// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package lineedit

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gemstones-dev/gemstones/fileutil"
	"github.com/gemstones-dev/gemstones/logutil"
	"github.com/gemstones-dev/gemstones/metrics"
	"github.com/gemstones-dev/gemstones/security"
	"github.com/spf13/afero"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// WriteMode selects how WriteLines replaces a file.
type WriteMode int

const (
	// WriteAtomic writes to a temporary file in the same directory and renames
	// it over the target, so readers never observe a half-written file.
	WriteAtomic WriteMode = iota
	// WriteInPlace truncates and rewrites the target directly. A failure part
	// way through leaves a partially written file.
	WriteInPlace
)

// String returns the configuration name of the mode.
func (m WriteMode) String() string {
	if m == WriteInPlace {
		return "in-place"
	}
	return "atomic"
}

// ParseWriteMode parses "atomic" or "in-place" (also "inplace").
func ParseWriteMode(s string) (WriteMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "atomic":
		return WriteAtomic, nil
	case "in-place", "inplace":
		return WriteInPlace, nil
	default:
		return WriteAtomic, fmt.Errorf("unknown write mode %q", s)
	}
}

const (
	// DefaultEncoding is used when Options.Encoding is empty.
	DefaultEncoding = "utf-8"
	// DefaultTerminator is appended by SetLine when asked to add a line break.
	DefaultTerminator = "\n"
)

// Options configures a Store.
type Options struct {
	// Fs is the filesystem backend. Defaults to the OS filesystem.
	Fs afero.Fs
	// Encoding is a WHATWG encoding label such as "utf-8", "latin1" or
	// "utf-16le". Defaults to UTF-8.
	Encoding string
	// WriteMode selects atomic (default) or in-place rewrites.
	WriteMode WriteMode
	// Terminator is the line break SetLine appends. Defaults to "\n".
	Terminator string
	// Logger overrides the component logger.
	Logger *logutil.ComponentLogger
}

// Store reads and rewrites text files as ordered sequences of lines.
//
// Every call re-reads the file from disk; nothing is cached between calls.
// A Store does not coordinate concurrent writers of the same file.
type Store struct {
	fs         afero.Fs
	enc        encoding.Encoding // nil means UTF-8 pass-through
	encName    string
	writeMode  WriteMode
	terminator string
	logger     *logutil.ComponentLogger
}

// NewStore creates a Store from opts.
func NewStore(opts Options) (*Store, error) {
	s := &Store{
		fs:         opts.Fs,
		writeMode:  opts.WriteMode,
		terminator: opts.Terminator,
		logger:     opts.Logger,
	}
	if s.fs == nil {
		s.fs = afero.NewOsFs()
	}
	if s.terminator == "" {
		s.terminator = DefaultTerminator
	}

	enc, name, err := resolveEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}
	s.enc = enc
	s.encName = name

	return s, nil
}

// resolveEncoding looks a label up in the WHATWG index. UTF-8 resolves to a nil
// encoding so bytes pass through untouched, invalid sequences included.
func resolveEncoding(label string) (encoding.Encoding, string, error) {
	if label == "" {
		return nil, DefaultEncoding, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}
	if name == DefaultEncoding {
		return nil, name, nil
	}
	return enc, name, nil
}

var (
	defaultMu    sync.RWMutex
	defaultStore *Store
)

// Default returns the process-wide store used by the package-level functions:
// OS filesystem, UTF-8, atomic writes.
func Default() *Store {
	defaultMu.RLock()
	s := defaultStore
	defaultMu.RUnlock()
	if s != nil {
		return s
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultStore == nil {
		// Zero Options cannot fail.
		defaultStore, _ = NewStore(Options{})
	}
	return defaultStore
}

// SetDefault replaces the process-wide store. Passing nil restores the
// built-in default on next use.
func SetDefault(s *Store) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultStore = s
}

// Encoding returns the canonical name of the store's encoding.
func (s *Store) Encoding() string {
	return s.encName
}

// WriteMode returns the store's write mode.
func (s *Store) WriteMode() WriteMode {
	return s.writeMode
}

func (s *Store) log(path, operation string) *logutil.ComponentLogger {
	l := s.logger
	if l == nil {
		l = logutil.NewLogger("lineedit")
	}
	return l.WithPath(path).WithOperation(operation)
}

// observe records an operation's metrics. Use with defer and a named error.
func observe(operation string, start time.Time, err *error) {
	metrics.RecordOperation(operation, time.Since(start), *err)
}

// ReadLines reads the whole file and splits it after every "\n". Each line
// keeps its terminator ("\r\n" stays intact); the last line has none if the
// file does not end with a line break. An empty file has no lines.
func (s *Store) ReadLines(path string) (lines []string, err error) {
	defer observe("read", time.Now(), &err)
	return s.readLines(path)
}

func (s *Store) readLines(path string) ([]string, error) {
	path, err := cleanPath(path)
	if err != nil {
		return nil, err
	}

	// #nosec G304 -- Callers choose the file; containment is enforced by the MCP server
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, path, err)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if s.enc != nil {
		data, err = s.enc.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s as %s: %w", path, s.encName, err)
		}
	}

	return SplitLines(string(data)), nil
}

// cleanPath lexically cleans path. Parent references are allowed: the store
// edits whatever file its caller names.
func cleanPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", security.ErrInvalidPath)
	}
	return filepath.Clean(path), nil
}

// SplitLines splits text after every "\n", keeping terminators.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// WriteLines replaces the file's content with the concatenation of lines.
// The file is created if it does not exist.
func (s *Store) WriteLines(path string, lines []string) (err error) {
	defer observe("write", time.Now(), &err)
	return s.writeLines(path, lines)
}

func (s *Store) writeLines(path string, lines []string) error {
	path, err := cleanPath(path)
	if err != nil {
		return err
	}

	data := []byte(strings.Join(lines, ""))
	if s.enc != nil {
		encoded, err := s.enc.NewEncoder().Bytes(data)
		if err != nil {
			return fmt.Errorf("failed to encode %s as %s: %w", path, s.encName, err)
		}
		data = encoded
	}

	perm := os.FileMode(fileutil.FilePermission)
	if info, err := s.fs.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if s.writeMode == WriteInPlace {
		return s.writeInPlace(path, data, perm)
	}
	return s.writeAtomic(path, data, perm)
}

func (s *Store) writeInPlace(path string, data []byte, perm os.FileMode) error {
	f, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

func (s *Store) writeAtomic(path string, data []byte, perm os.FileMode) error {
	return fileutil.AtomicWriteFileFs(s.fs, path, data, perm)
}
