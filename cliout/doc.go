// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package cliout provides structured output formatting for CLI commands.
// It supports human-readable text and JSON. Output is plain text, no colors.
//
// # Output Formats
//
// SetFormat("json") switches every Print call to indented JSON on stdout,
// which is what scripts consume:
//
//	if err := cliout.SetFormat(outputFlag); err != nil {
//	    return err
//	}
//	return cliout.Print(result, func() {
//	    cliout.Label("Start", strconv.Itoa(result.Start))
//	})
//
// Success and Info go to stdout; Error and Warning go to stderr. Symbols fall
// back to ASCII ("[+]", "[-]") when stdout is not a terminal
// (golang.org/x/term) or the Windows console cannot render Unicode.
package cliout
