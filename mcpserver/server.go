// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gemstones-dev/gemstones/lineedit"
	"github.com/gemstones-dev/gemstones/logutil"
	"github.com/gemstones-dev/gemstones/metrics"
	"github.com/gemstones-dev/gemstones/security"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"golang.org/x/time/rate"
)

// ServerName is reported to MCP clients.
const ServerName = "gemstones"

// ErrRateLimited is returned when a tool call exceeds the rate limit.
var ErrRateLimited = errors.New("rate limit exceeded")

// Options configures a Server.
type Options struct {
	// Store serves the tools. Defaults to lineedit.Default().
	Store *lineedit.Store
	// AllowedBases restricts tool paths. Defaults to the working directory.
	AllowedBases []string
	// RateLimit is the sustained calls per second; 0 disables limiting.
	RateLimit float64
	// Burst is the number of calls allowed at once.
	Burst int
	// Version is reported to clients.
	Version string
}

// Server exposes the line store as MCP tools.
type Server struct {
	store   *lineedit.Store
	bases   []string
	limiter *rate.Limiter
	logger  *logutil.ComponentLogger
	mcp     *server.MCPServer
	tools   []server.ServerTool
}

// New creates a Server and registers its tools.
func New(opts Options) (*Server, error) {
	s := &Server{
		store:  opts.Store,
		bases:  opts.AllowedBases,
		logger: logutil.NewLogger("mcpserver"),
	}
	if s.store == nil {
		s.store = lineedit.Default()
	}
	if len(s.bases) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		s.bases = []string{wd}
	}

	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}
	burst := opts.Burst
	if burst < 1 {
		burst = 1
	}
	s.limiter = rate.NewLimiter(limit, burst)

	version := opts.Version
	if version == "" {
		version = "0.0.0-dev"
	}
	s.mcp = server.NewMCPServer(ServerName, version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	s.tools = s.toolset()
	s.mcp.AddTools(s.tools...)

	return s, nil
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// Serve speaks MCP over in and out until ctx is cancelled or in closes.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	s.logger.Info("serving MCP over stdio", "tools", len(s.tools), "allowed_bases", s.bases)
	return server.NewStdioServer(s.mcp).Listen(ctx, in, out)
}

// ServeStdio serves on the process's stdin and stdout.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.Serve(ctx, os.Stdin, os.Stdout)
}

// toolFunc does the work of one tool and returns a JSON-marshalable result.
type toolFunc func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// handler wraps fn with rate limiting, metrics, logging and error results.
// Tool failures are reported to the client as error results, not protocol
// errors.
func (s *Server) handler(name string, fn toolFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		log := s.logger.WithOperation(name)

		if !s.limiter.Allow() {
			err := fmt.Errorf("%w for tool %q, please wait before retrying", ErrRateLimited, name)
			metrics.RecordToolCall(name, err)
			log.Warn("rate limited")
			return mcp.NewToolResultError(err.Error()), nil
		}

		result, err := fn(ctx, getArgsMap(request))
		metrics.RecordToolCall(name, err)
		if err != nil {
			log.Debug("tool failed", "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		return marshalToolResult(result)
	}
}

// pathArg reads the "path" argument and checks it against the allowed bases.
func (s *Server) pathArg(args map[string]interface{}) (string, error) {
	p, err := stringArg(args, "path")
	if err != nil {
		return "", err
	}
	return security.ValidatePathWithinBases(p, s.bases...)
}
