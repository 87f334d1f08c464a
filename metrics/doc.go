// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package metrics exposes Prometheus collectors for line store operations,
// tag scans and MCP tool calls, plus a small HTTP server serving /metrics.
//
// Collectors are registered on the default registry at package init.
package metrics
