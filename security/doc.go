// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package security validates file paths before they are read or rewritten.
//
// # Path Validation
//
//   - Empty paths are rejected with ErrInvalidPath
//   - Any ".." path element is rejected with ErrPathTraversal
//   - Symbolic links are resolved; paths that do not exist yet are allowed
//
// ValidatePathWithinBases additionally confines a path to a set of base
// directories, which the MCP server uses to keep tool calls inside the
// workspaces it was started for:
//
//	real, err := security.ValidatePathWithinBases(userPath, workspace)
//	if err != nil {
//	    return err
//	}
//
// # File Permissions
//
// ValidateFilePermissions flags group- or world-writable files. It is used
// on configuration files before they are trusted.
package security
