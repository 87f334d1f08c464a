// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package fileutil

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gemstones-dev/gemstones/pattern"
	"github.com/gemstones-dev/gemstones/security"
	"github.com/spf13/afero"
)

// File permissions
const (
	// DirPermission is the default permission for creating directories (rwxr-x---)
	DirPermission = 0750
	// FilePermission is the default permission for creating files (rw-r--r--)
	FilePermission = 0644
)

var appFs afero.Fs = afero.NewOsFs()

// AtomicWriteFile writes raw bytes to a file atomically.
// It writes to a temporary file first, then renames it to the target path.
// This ensures the file is never left in a partial/corrupt state.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	return AtomicWriteFileFs(appFs, path, data, perm)
}

// AtomicWriteFileFs is AtomicWriteFile on an arbitrary afero filesystem.
func AtomicWriteFileFs(fsys afero.Fs, path string, data []byte, perm os.FileMode) error {
	// Create a unique temp file in the same directory to avoid concurrent
	// writers using the same temp filename and causing rename failures.
	dir := filepath.Dir(path)
	tmpFile, err := afero.TempFile(fsys, dir, filepath.Base(path)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	// Ensure file is closed on all paths
	defer func() { _ = tmpFile.Close() }()

	if _, err := tmpFile.Write(data); err != nil {
		_ = fsys.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	// Flush before rename; some CI macOS runners showed partially written
	// files without it.
	if err := tmpFile.Sync(); err != nil {
		_ = fsys.Remove(tmpPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		_ = fsys.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := fsys.Chmod(tmpPath, perm); err != nil {
		_ = fsys.Remove(tmpPath)
		return fmt.Errorf("failed to set file permissions: %w", err)
	}

	// Rename is atomic on most filesystems but can fail transiently on
	// Windows while another process holds the target open.
	var renameErr error
	for attempt := 0; attempt < 5; attempt++ {
		renameErr = fsys.Rename(tmpPath, path)
		if renameErr == nil {
			break
		}
		if attempt < 4 { // Don't sleep on last attempt
			delay := time.Duration(20*(attempt+1)) * time.Millisecond // 20ms, 40ms, 60ms, 80ms
			time.Sleep(delay)
		}
	}
	if renameErr != nil {
		_ = fsys.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", renameErr)
	}

	return nil
}

// EnsureDir creates a directory and any missing parents.
func EnsureDir(path string) error {
	if err := appFs.MkdirAll(path, DirPermission); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := appFs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	ok, err := afero.DirExists(appFs, path)
	return err == nil && ok
}

// RemoveDir removes path and everything under it. Errors are ignored.
func RemoveDir(path string) {
	_ = appFs.RemoveAll(path)
}

// RecreateDir removes path if it exists and creates it again, empty.
func RecreateDir(path string) error {
	RemoveDir(path)
	return EnsureDir(path)
}

// RemoveFile removes path if it is a regular file. Missing files and
// directories are left alone.
func RemoveFile(path string) error {
	if !FileExists(path) {
		return nil
	}
	if err := appFs.Remove(path); err != nil {
		return fmt.Errorf("failed to remove %s: %w", path, err)
	}
	return nil
}

// RemoveFiles removes every file under root whose name matches pattern.
func RemoveFiles(root, pat string) error {
	files, err := FindFiles(root, pat, true)
	if err != nil {
		return err
	}
	for _, f := range files {
		if err := appFs.Remove(f); err != nil {
			return fmt.Errorf("failed to remove %s: %w", f, err)
		}
	}
	return nil
}

// RemoveDirs removes every directory under root whose name matches pattern,
// together with its contents.
func RemoveDirs(root, pat string) error {
	dirs, err := FindDirs(root, pat, true)
	if err != nil {
		return err
	}
	for _, d := range dirs {
		// A parent removed earlier takes its children with it.
		if err := appFs.RemoveAll(d); err != nil {
			return fmt.Errorf("failed to remove %s: %w", d, err)
		}
	}
	return nil
}

// FindOptions configures FindFilesWithOptions and FindDirsWithOptions.
type FindOptions struct {
	// Recursive descends into subdirectories.
	Recursive bool
	// Skip leaves matching paths out of the result. Skipped directories are
	// not descended into.
	Skip pattern.Skipper
}

// FindFiles returns the files in root whose names match pattern, in lexical
// order. "*" matches every name.
func FindFiles(root, pat string, recursive bool) ([]string, error) {
	return FindFilesWithOptions(root, pat, FindOptions{Recursive: recursive})
}

// FindFilesWithOptions is FindFiles with a skipper.
func FindFilesWithOptions(root, pat string, opts FindOptions) ([]string, error) {
	return find(root, pat, opts, false)
}

// FindDirs returns the directories in root whose names match pattern, in
// lexical order. root itself is never included.
func FindDirs(root, pat string, recursive bool) ([]string, error) {
	return FindDirsWithOptions(root, pat, FindOptions{Recursive: recursive})
}

// FindDirsWithOptions is FindDirs with a skipper.
func FindDirsWithOptions(root, pat string, opts FindOptions) ([]string, error) {
	return find(root, pat, opts, true)
}

func find(root, pat string, opts FindOptions, wantDirs bool) ([]string, error) {
	m, err := pattern.ForName(pat)
	if err != nil {
		return nil, err
	}

	skip := func(path string) bool {
		return opts.Skip != nil && opts.Skip.Skip(path)
	}

	var results []string
	if !opts.Recursive {
		entries, err := afero.ReadDir(appFs, root)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s: %w", root, err)
		}
		for _, e := range entries {
			path := filepath.Join(root, e.Name())
			if e.IsDir() == wantDirs && !skip(path) && m.Match(e.Name()) {
				results = append(results, path)
			}
		}
		return results, nil
	}

	err = afero.Walk(appFs, root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if path == root {
			return nil
		}
		if skip(path) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() == wantDirs && m.Match(info.Name()) {
			results = append(results, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return results, nil
}

// SetFileContent replaces the content of path, creating it and its parent
// directories if needed.
func SetFileContent(path, content string) error {
	if err := security.ValidatePath(path); err != nil {
		return err
	}
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := afero.WriteFile(appFs, path, []byte(content), FilePermission); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// GetFileContents returns the whole content of path.
func GetFileContents(path string) (string, error) {
	if err := security.ValidatePath(path); err != nil {
		return "", err
	}
	// #nosec G304 -- Path validated by security.ValidatePath
	data, err := afero.ReadFile(appFs, path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// CopyFile copies a regular file, creating the target directory if needed.
// The copy keeps the source's permission bits.
func CopyFile(from, to string) error {
	if err := security.ValidatePath(from); err != nil {
		return err
	}
	if err := security.ValidatePath(to); err != nil {
		return err
	}

	src, err := appFs.Open(from)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", from, err)
	}
	defer func() { _ = src.Close() }()

	info, err := src.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", from, err)
	}
	if info.IsDir() {
		return fmt.Errorf("cannot copy %s: is a directory", from)
	}

	if err := EnsureDir(filepath.Dir(to)); err != nil {
		return err
	}

	dst, err := appFs.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", to, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return fmt.Errorf("failed to copy %s to %s: %w", from, to, err)
	}
	if err := dst.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", to, err)
	}
	return nil
}

// ContainsText checks if a file contains the specified text.
// Returns false if file doesn't exist, can't be read, or validation fails.
func ContainsText(filePath string, text string) bool {
	ok, err := FileHasContent(filePath, text)
	return err == nil && ok
}

// FileHasContent reports whether the file contains content anywhere.
func FileHasContent(path, content string) (bool, error) {
	data, err := GetFileContents(path)
	if err != nil {
		return false, err
	}
	return strings.Contains(data, content), nil
}

// PrependToFile inserts content before the file's current content.
func PrependToFile(path, content string) error {
	return rewrite(path, func(s string) string { return content + s })
}

// AppendToFile adds content after the file's current content.
func AppendToFile(path, content string) error {
	return rewrite(path, func(s string) string { return s + content })
}

// ReplaceInFile replaces every occurrence of old with replacement.
func ReplaceInFile(path, old, replacement string) error {
	return rewrite(path, func(s string) string { return strings.ReplaceAll(s, old, replacement) })
}

// rewrite applies fn to the file content and writes the result back
// atomically, keeping the file's permissions.
func rewrite(path string, fn func(string) string) error {
	data, err := GetFileContents(path)
	if err != nil {
		return err
	}

	perm := os.FileMode(FilePermission)
	if info, err := appFs.Stat(path); err == nil {
		perm = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	return AtomicWriteFile(path, []byte(fn(data)), perm)
}
