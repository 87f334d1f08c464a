// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package mcpserver exposes the line editing operations as Model Context
// Protocol tools served over stdio.
//
// Every tool takes a "path" argument that must resolve inside one of the
// server's allowed base directories. Tool failures, including rate limiting
// and invalid arguments, are returned as MCP error results so the client can
// show them to the model. Searches that find nothing return null fields
// rather than errors.
package mcpserver
