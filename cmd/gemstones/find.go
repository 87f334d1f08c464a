// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"strconv"

	"github.com/gemstones-dev/gemstones/cliout"
	"github.com/gemstones-dev/gemstones/lineedit"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const findLong = `Without --strip the target is compared with the whole line, line break
included. With --pattern the target is a shell glob (* ? [abc] [!abc]) where
* also matches path separators.`

func addFindFlags(fs *pflag.FlagSet, o *lineedit.FindOptions) {
	fs.BoolVar(&o.Strip, "strip", false, "Trim surrounding whitespace from each line before comparing")
	fs.BoolVarP(&o.Pattern, "pattern", "p", false, "Treat the target as a shell glob")
}

func newFindCmd(opts *rootOptions) *cobra.Command {
	var findOpts lineedit.FindOptions
	cmd := &cobra.Command{
		Use:   "find <file> <target>",
		Short: "Print the number of the first matching line",
		Long:  findLong,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, found, err := lineedit.FindLineNumber(args[0], args[1], findOpts)
			if err != nil {
				return err
			}
			return printResult(opts, found, lineResult{Path: args[0], Line: n}, func() {
				cliout.Plain("%d", n)
			})
		},
	}
	addFindFlags(cmd.Flags(), &findOpts)
	return cmd
}

func newFindAllCmd(opts *rootOptions) *cobra.Command {
	var findOpts lineedit.FindOptions
	cmd := &cobra.Command{
		Use:   "find-all <file> <target>",
		Short: "Print the numbers of every matching line",
		Long:  findLong,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := lineedit.FindAllLineNumbers(args[0], args[1], findOpts)
			if err != nil {
				return err
			}
			return printResult(opts, lines != nil, lines, func() {
				for _, n := range lines {
					cliout.Raw(strconv.Itoa(n) + "\n")
				}
			})
		},
	}
	addFindFlags(cmd.Flags(), &findOpts)
	return cmd
}
