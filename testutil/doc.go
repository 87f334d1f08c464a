// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package testutil provides common testing helpers: capturing stdout,
// writing fixture files into a temporary directory, and reading them back.
//
// All helpers call t.Helper() so failures point at the calling test.
//
//	func TestPrepend(t *testing.T) {
//	    path := testutil.WriteLines(t, t.TempDir(), "f.txt", "line 1", "line 2")
//	    // ... edit ...
//	    if got := testutil.ReadFile(t, path); got != "//line 1\nline 2" {
//	        t.Errorf("unexpected content %q", got)
//	    }
//	}
package testutil
