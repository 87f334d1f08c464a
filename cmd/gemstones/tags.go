// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"github.com/gemstones-dev/gemstones/cliout"
	"github.com/gemstones-dev/gemstones/lineedit"
	"github.com/spf13/cobra"
)

func newTagsCmd(opts *rootOptions) *cobra.Command {
	var (
		startTag, endTag string
		startFrom        int
		rich             bool
	)
	cmd := &cobra.Command{
		Use:   "tags <file>",
		Short: "Find the first region where start and end tags balance",
		Long: `Scans from --from for the first start tag and prints the lines where the
region opens and where the tag counts first balance, e.g. "3 5".

Counting is not nesting-aware: the region closes at the first character where
as many end tags as start tags have been seen. An end tag before any start tag
stops the scan. --rich also prints why no region was found: no_start_tag,
malformed or unbalanced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseTag("--start", startTag)
			if err != nil {
				return err
			}
			end, err := parseTag("--end", endTag)
			if err != nil {
				return err
			}

			result, err := lineedit.ScanTags(args[0], start, end, startFrom)
			if err != nil {
				return err
			}

			if !rich {
				return printResult(opts, result.OK(), result.Span, func() {
					cliout.Plain("%d %d", result.Span.Start, result.Span.End)
				})
			}

			if err := cliout.Print(result, func() {
				if result.OK() {
					cliout.Plain("%s %d %d", result.Status, result.Span.Start, result.Span.End)
				} else {
					cliout.Plain("%s", result.Status)
				}
			}); err != nil {
				return err
			}
			if !result.OK() && opts.strict {
				return errNoResult
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&startTag, "start", "{", "Start tag character")
	cmd.Flags().StringVar(&endTag, "end", "}", "End tag character")
	cmd.Flags().IntVar(&startFrom, "from", 1, "Line to start scanning from")
	cmd.Flags().BoolVar(&rich, "rich", false, "Print the scan status")
	return cmd
}
