// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package fileutil provides the file and directory helpers used around the
// line store: existence checks, directory creation and removal, glob-based
// file and directory search, whole-file content helpers and atomic writes.
//
// All helpers go through an afero OS filesystem. AtomicWriteFileFs accepts
// any afero.Fs so stores backed by an in-memory filesystem share the same
// write path.
//
// # Atomic Write Operations
//
// AtomicWriteFile never leaves a partially written target:
//
//   - a uniquely named temporary file is created next to the target
//   - data is synced to disk before the rename
//   - the rename is retried 5 times with 20ms, 40ms, 60ms and 80ms pauses
//   - the temporary file is removed on any failure
//
// # Searching
//
// FindFiles and FindDirs match base names with shell globs from the pattern
// package ("*" matches everything). Results come back in lexical order.
// FindOptions.Skip prunes paths, and skipped directories are not descended
// into:
//
//	files, err := fileutil.FindFilesWithOptions(".", "*.go", fileutil.FindOptions{
//	    Recursive: true,
//	    Skip:      pattern.SkipNames(".git", "vendor"),
//	})
//
// # File Permissions
//
//   - DirPermission (0750): rwxr-x---
//   - FilePermission (0644): rw-r--r--
//
// Reads are validated with security.ValidatePath. ContainsText and RemoveDir
// swallow errors; every other helper returns them wrapped with %w.
package fileutil
