// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"

	"github.com/gemstones-dev/gemstones/editor"
	"github.com/gemstones-dev/gemstones/lineedit"
	"github.com/spf13/cobra"
)

func newOpenCmd(opts *rootOptions) *cobra.Command {
	var (
		line     int
		target   string
		findOpts lineedit.FindOptions
		with     string
	)
	cmd := &cobra.Command{
		Use:   "open <file>",
		Short: "Open a file in your editor at a line",
		Long: `Opens file in EDITOR (or VISUAL, or an installed editor) at --line, or at
the first line matching --find. The editor inherits the terminal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if target != "" {
				n, found, err := lineedit.FindLineNumber(path, target, findOpts)
				if err != nil {
					return err
				}
				if !found {
					if opts.strict {
						return errNoResult
					}
					return fmt.Errorf("no line of %s matches %q", path, target)
				}
				line = n
			} else if line > 0 {
				// Validate the line before handing it to the editor.
				if _, err := lineedit.GetLineContent(path, line); err != nil {
					return err
				}
			}

			return editor.Open(cmd.Context(), path, editor.Options{Editor: with, Line: line, Wait: true})
		},
	}
	cmd.Flags().IntVarP(&line, "line", "n", 0, "Line to open at")
	cmd.Flags().StringVar(&target, "find", "", "Open at the first line matching this target")
	cmd.Flags().StringVar(&with, "editor", "", "Editor command to use")
	addFindFlags(cmd.Flags(), &findOpts)
	cmd.MarkFlagsMutuallyExclusive("line", "find")
	return cmd
}
