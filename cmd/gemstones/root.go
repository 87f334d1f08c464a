// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gemstones-dev/gemstones/cliout"
	"github.com/gemstones-dev/gemstones/config"
	"github.com/gemstones-dev/gemstones/version"
	"github.com/spf13/cobra"
)

// Exit codes.
const (
	exitOK       = 0
	exitError    = 1
	exitNoResult = 2
)

// errNoResult is returned under --strict when a query finds nothing.
var errNoResult = errors.New("no result")

// skipInit marks commands that must run without loading the settings.
const skipInit = "skip-init"

type rootOptions struct {
	configPath string
	output     string
	encoding   string
	debug      bool
	strict     bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "gemstones",
		Short: "Line-oriented text file editing and search",
		Long: `gemstones reads, edits and searches text files one line at a time.

Lines are numbered from 1 and keep their line break, so "line get" prints
a line exactly as stored. Queries that find nothing print nothing (or null
with --output json); pass --strict to exit with status 2 instead.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipInit] == "true" {
				return nil
			}
			return initSettings(cmd, opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.DefaultFileName, "Path to the settings file")
	flags.StringVarP(&opts.output, "output", "o", "default", "Output format (default, json)")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.StringVar(&opts.encoding, "encoding", "", "Text encoding of the files (default utf-8)")
	flags.BoolVar(&opts.strict, "strict", false, "Exit with status 2 when a query finds nothing")

	cmd.AddCommand(
		newLineCmd(opts),
		newFindCmd(opts),
		newFindAllCmd(opts),
		newTagsCmd(opts),
		newFilesCmd(opts),
		newOpenCmd(opts),
		newConfigCmd(opts),
		newMCPCmd(),
		version.NewCommand(version.New("gemstones")),
	)
	return cmd
}

// initSettings layers the config file, the environment and the command line
// flags, then installs the result process-wide.
func initSettings(cmd *cobra.Command, opts *rootOptions) error {
	s, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if err := s.ApplyEnv(); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		s.Output = opts.output
	}
	if flags.Changed("debug") {
		s.Debug = opts.debug
	}
	if flags.Changed("encoding") {
		s.Encoding = opts.encoding
	}
	return config.Init(s)
}

// run executes the CLI with args and returns the process exit code.
func run(args []string) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer config.Teardown()

	cmd := newRootCmd()
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errNoResult):
		return exitNoResult
	default:
		cliout.Error("%v", err)
		return exitError
	}
}
