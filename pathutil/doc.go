// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package pathutil normalizes paths and locates well-known directories.
//
// NormalizePath turns "C:\\work\\file.txt" into "C:/work/file.txt" so paths
// print the same way on every platform. ExpandHome lets configuration files
// refer to "~/notes.txt".
package pathutil
