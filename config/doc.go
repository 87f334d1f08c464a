// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package config holds the process-wide settings: logging, the line store's
// encoding and write mode, output format, ignore lists and MCP limits.
//
// Settings come from three layers, later ones winning: built-in defaults, an
// optional YAML file (.gemstones.yaml by default) and GEMSTONES_* environment
// variables.
//
//	s, err := config.Load(config.DefaultFileName)
//	if err != nil {
//	    return err
//	}
//	if err := s.ApplyEnv(); err != nil {
//	    return err
//	}
//	if err := config.Init(s); err != nil {
//	    return err
//	}
//
// Init runs once per process; Teardown resets it, mostly for tests.
//
// Example file:
//
//	encoding: latin1
//	writeMode: atomic   # or in-place
//	ignoreNames: [.git, node_modules, "*.tmp"]
//	mcp:
//	  allowedBases: [/srv/work]
//	  rateLimit: 5
//	  burst: 10
//
// SetValue edits one scalar key in such a file without disturbing comments.
package config
