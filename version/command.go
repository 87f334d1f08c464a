// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package version

import (
	"fmt"

	"github.com/gemstones-dev/gemstones/cliout"
	"github.com/gemstones-dev/gemstones/logutil"
	"github.com/gemstones-dev/gemstones/platform"
	"github.com/spf13/cobra"
)

// NewCommand creates a version command. Output follows the cliout format.
func NewCommand(info *Info) *cobra.Command {
	var quiet, withHost bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Display %s version information", info.Name),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := *info
			if withHost {
				host, err := platform.Describe(cmd.Context())
				if err != nil {
					logutil.Debug("host details unavailable", "error", err)
				}
				out.Host = host.String()
			}

			if quiet && !cliout.IsJSON() {
				cliout.Raw(out.Version + "\n")
				return nil
			}

			return cliout.Print(out, func() {
				cliout.Header(fmt.Sprintf("%s Version", out.Name))
				cliout.Label("Version", out.Version)
				cliout.Label("Build Date", out.BuildDate)
				cliout.Label("Git Commit", out.GitCommit)
				if out.Host != "" {
					cliout.Label("Host", out.Host)
				}
			})
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Only print version number")
	cmd.Flags().BoolVar(&withHost, "host", false, "Include operating system details")
	return cmd
}
