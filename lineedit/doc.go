// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package lineedit treats a text file as an ordered sequence of lines and
// performs position-addressed edits and lookups on it.
//
// Lines are addressed by 1-based number, as in a text editor. Every line read
// keeps its terminator exactly as stored, so rewriting a file only changes
// the lines that were edited.
//
// # Operations
//
//   - ReadLines / WriteLines: whole-file read and full replace
//   - SetLine, PrependToLine, PrependToLineRange: single-line edits
//   - GetLineContent, LineHasContent: single-line reads
//   - FindLineNumber, FindAllLineNumbers: exact or glob line lookup
//   - ScanTags, FindEnclosingTags: balanced start/end tag region search
//
// # Example Usage
//
//	// Comment out lines 2-4
//	if err := lineedit.PrependToLineRange("main.c", 2, 4, "//"); err != nil {
//	    return err
//	}
//
//	// Find the body of the function declared on line 10
//	span, ok, err := lineedit.FindEnclosingTags("main.c", '{', '}', 10)
//	if err != nil {
//	    return err
//	}
//	if ok {
//	    fmt.Printf("body spans lines %d-%d\n", span.Start, span.End)
//	}
//
// # "No Result" Values
//
// Absence is not an error. FindLineNumber and FindEnclosingTags return
// ok=false, and FindAllLineNumbers returns a nil slice. ScanTags reports why
// a scan found nothing through ScanResult.Status.
//
// # Errors
//
// A missing file wraps ErrNotFound (and fs.ErrNotExist). A line number
// outside [1, line count] is a *LineRangeError matching ErrOutOfRange. Both
// are returned, never swallowed.
//
// # Writes
//
// By default a rewrite goes to a temporary file that is renamed over the
// target. Options.WriteMode = WriteInPlace truncates the file and writes it
// directly instead; a failure during that write can leave a partial file.
// Neither mode coordinates concurrent writers of the same file.
//
// # Stores
//
// The package-level functions use Default(), which reads UTF-8 from the OS
// filesystem. A Store built with NewStore can use another encoding or any
// afero filesystem:
//
//	store, err := lineedit.NewStore(lineedit.Options{
//	    Fs:       afero.NewMemMapFs(),
//	    Encoding: "latin1",
//	})
package lineedit
