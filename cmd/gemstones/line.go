// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"github.com/gemstones-dev/gemstones/cliout"
	"github.com/gemstones-dev/gemstones/lineedit"
	"github.com/spf13/cobra"
)

type lineResult struct {
	Path    string `json:"path"`
	Line    int    `json:"line"`
	Content string `json:"content,omitempty"`
}

type editResult struct {
	Path  string `json:"path"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func newLineCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "line",
		Short: "Read or edit a single line",
	}
	cmd.AddCommand(
		newLineGetCmd(),
		newLineHasCmd(opts),
		newLineSetCmd(),
		newLinePrependCmd(),
		newLinePrependRangeCmd(),
	)
	return cmd
}

func newLineGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <line>",
		Short: "Print a line exactly as stored",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseLineNumber("line", args[1])
			if err != nil {
				return err
			}
			content, err := lineedit.GetLineContent(args[0], n)
			if err != nil {
				return err
			}
			return cliout.Print(lineResult{Path: args[0], Line: n, Content: content}, func() {
				printLine(content)
			})
		},
	}
}

func newLineHasCmd(opts *rootOptions) *cobra.Command {
	var strip bool
	cmd := &cobra.Command{
		Use:   "has <file> <line> <content>",
		Short: "Check whether a line equals the given text",
		Long: `Prints true or false. Without --strip the comparison includes the
line break, so the last line of a file is usually the only one that can
match unstripped text. Under --strict a mismatch exits with status 2.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseLineNumber("line", args[1])
			if err != nil {
				return err
			}
			ok, err := lineedit.LineHasContent(args[0], n, args[2], strip)
			if err != nil {
				return err
			}
			if err := cliout.Print(map[string]bool{"match": ok}, func() {
				if ok {
					cliout.Plain("true")
				} else {
					cliout.Plain("false")
				}
			}); err != nil {
				return err
			}
			if !ok && opts.strict {
				return errNoResult
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strip, "strip", false, "Trim surrounding whitespace before comparing")
	return cmd
}

func newLineSetCmd() *cobra.Command {
	var noTerminator bool
	cmd := &cobra.Command{
		Use:   "set <file> <line> <content>",
		Short: "Replace a line",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseLineNumber("line", args[1])
			if err != nil {
				return err
			}
			if err := lineedit.SetLine(args[0], n, args[2], !noTerminator); err != nil {
				return err
			}
			return cliout.Print(editResult{Path: args[0], Start: n, End: n}, func() {
				cliout.Success("Set line %d of %s", n, args[0])
			})
		},
	}
	cmd.Flags().BoolVar(&noTerminator, "no-terminator", false, "Write the content verbatim without a line break")
	return cmd
}

func newLinePrependCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prepend <file> <line> <prefix>",
		Short: "Insert text at the start of a line",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := parseLineNumber("line", args[1])
			if err != nil {
				return err
			}
			if err := lineedit.PrependToLine(args[0], n, args[2]); err != nil {
				return err
			}
			return cliout.Print(editResult{Path: args[0], Start: n, End: n}, func() {
				cliout.Success("Prepended to line %d of %s", n, args[0])
			})
		},
	}
}

func newLinePrependRangeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prepend-range <file> <start> <end> <prefix>",
		Short: "Insert text at the start of every line in a range",
		Long: `Prepends to lines start through end inclusive, one line at a time.
An empty range (start greater than end) changes nothing. If the range runs
past the end of the file the lines before that point are already edited
when the error is reported.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseLineNumber("start", args[1])
			if err != nil {
				return err
			}
			end, err := parseLineNumber("end", args[2])
			if err != nil {
				return err
			}
			if err := lineedit.PrependToLineRange(args[0], start, end, args[3]); err != nil {
				return err
			}
			return cliout.Print(editResult{Path: args[0], Start: start, End: end}, func() {
				cliout.Success("Prepended to lines %d-%d of %s", start, end, args[0])
			})
		},
	}
}
