// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package pattern provides shell-glob matching and path skip predicates.
//
// Patterns follow filename-glob rules: "*" matches any run of characters,
// "?" matches one character and "[...]" matches a character class ("[!...]"
// negates it). Unlike path.Match, "*" is not stopped by "/", so the same
// matcher works on file names and on arbitrary text such as file lines.
//
// # Skippers
//
// Directory walks take a Skipper rather than a callback so callers can swap
// the policy without touching the walk:
//
//	skip := pattern.SkipAny(
//	    pattern.SkipNames(".DS_Store", "Thumbs.db"),
//	    pattern.SkipFunc(func(p string) bool { return strings.Contains(p, "symbolic") }),
//	)
package pattern
