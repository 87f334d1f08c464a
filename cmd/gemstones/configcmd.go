// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gemstones-dev/gemstones/cliout"
	"github.com/gemstones-dev/gemstones/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
	}
	cmd.AddCommand(newConfigShowCmd(), newConfigSetCmd(opts))
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := config.Current()
			if s == nil {
				s = config.Default()
			}
			return cliout.Print(s, func() {
				cliout.Raw(s.String())
			})
		},
	}
}

func newConfigSetCmd(opts *rootOptions) *cobra.Command {
	keys := config.SettableKeys()
	sort.Strings(keys)

	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a value in the settings file",
		Long: fmt.Sprintf(`Writes key into the file named by --config, keeping its comments and
layout. The file is created when missing. Settable keys:

  %s`, strings.Join(keys, "\n  ")),
		Args: cobra.ExactArgs(2),
		// The file may be invalid; set is how it gets fixed.
		Annotations: map[string]string{skipInit: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.SetValue(opts.configPath, args[0], args[1]); err != nil {
				return err
			}
			cliout.Success("Set %s in %s", args[0], opts.configPath)
			return nil
		},
	}
}
