// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"errors"
	"net/http"

	"github.com/gemstones-dev/gemstones/config"
	"github.com/gemstones-dev/gemstones/lineedit"
	"github.com/gemstones-dev/gemstones/logutil"
	"github.com/gemstones-dev/gemstones/mcpserver"
	"github.com/gemstones-dev/gemstones/metrics"
	"github.com/gemstones-dev/gemstones/pathutil"
	"github.com/gemstones-dev/gemstones/version"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	var metricsPort int
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the line tools over MCP on stdin and stdout",
		Long: `Starts a Model Context Protocol server on stdin and stdout. Tool paths must
lie inside mcp.allowedBases (the working directory when unset) and calls are
rate limited by mcp.rateLimit and mcp.burst.

Logs go to stderr so they do not mix with the protocol stream.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := config.Current()
			if s == nil {
				s = config.Default()
			}

			bases := make([]string, 0, len(s.MCP.AllowedBases))
			for _, b := range s.MCP.AllowedBases {
				expanded, err := pathutil.ExpandHome(b)
				if err != nil {
					return err
				}
				bases = append(bases, expanded)
			}

			srv, err := mcpserver.New(mcpserver.Options{
				Store:        lineedit.Default(),
				AllowedBases: bases,
				RateLimit:    s.MCP.RateLimit,
				Burst:        s.MCP.Burst,
				Version:      version.Version,
			})
			if err != nil {
				return err
			}

			port := s.MetricsPort
			if cmd.Flags().Changed("metrics-port") {
				port = metricsPort
			}
			if port > 0 {
				go func() {
					logutil.Info("serving metrics", "port", port)
					if err := metrics.ServeMetrics(port); err != nil && !errors.Is(err, http.ErrServerClosed) {
						logutil.Error("metrics server stopped", "error", err)
					}
				}()
			}

			return srv.ServeStdio(cmd.Context())
		},
	}
	cmd.Flags().IntVar(&metricsPort, "metrics-port", 0, "Serve Prometheus metrics on this port (0 disables)")
	return cmd
}
