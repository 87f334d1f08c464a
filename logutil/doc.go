// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides a structured logging abstraction built on top of slog.
//
// # Basic Usage
//
//	logutil.SetupLogger(debug, structured)
//
//	logutil.Debug("line replaced", "path", path, "line", n)
//	logutil.Warn("file rewritten in place", "path", path)
//
// Packages that want their own context use a ComponentLogger:
//
//	log := logutil.NewLogger("lineedit").WithPath(path).WithOperation("set_line")
//	log.Debug("writing", "lines", len(lines))
//
// # Debug Mode
//
// Debug logging is enabled by passing debug=true to SetupLogger or by setting
// GEMSTONES_DEBUG=true.
//
// # Structured Logging
//
// With structured=true logs are written as JSON:
//
//	{"time":"2024-01-15T10:30:00Z","level":"INFO","msg":"done","path":"main.go"}
//
// Otherwise the slog text format is used:
//
//	time=2024-01-15T10:30:00Z level=INFO msg=done path=main.go
package logutil
