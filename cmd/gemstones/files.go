// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"github.com/gemstones-dev/gemstones/cliout"
	"github.com/gemstones-dev/gemstones/config"
	"github.com/gemstones-dev/gemstones/fileutil"
	"github.com/gemstones-dev/gemstones/pathutil"
	"github.com/spf13/cobra"
)

func newFilesCmd(opts *rootOptions) *cobra.Command {
	var recursive, dirs bool
	cmd := &cobra.Command{
		Use:   "files <root> <pattern>",
		Short: "List files whose names match a shell glob",
		Long: `Lists the files (or with --dirs, directories) under root whose base name
matches pattern. Names listed in the ignoreNames setting are skipped and not
descended into.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := pathutil.ExpandHome(args[0])
			if err != nil {
				return err
			}
			findOpts := fileutil.FindOptions{Recursive: recursive}
			if s := config.Current(); s != nil {
				findOpts.Skip = s.Skipper()
			}

			var paths []string
			if dirs {
				paths, err = fileutil.FindDirsWithOptions(root, args[1], findOpts)
			} else {
				paths, err = fileutil.FindFilesWithOptions(root, args[1], findOpts)
			}
			if err != nil {
				return err
			}

			return printResult(opts, len(paths) > 0, paths, func() {
				for _, p := range paths {
					cliout.Plain("%s", pathutil.NormalizePath(p))
				}
			})
		},
	}
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "Search subdirectories")
	cmd.Flags().BoolVar(&dirs, "dirs", false, "List directories instead of files")
	return cmd
}
