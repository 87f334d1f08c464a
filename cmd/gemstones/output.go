// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gemstones-dev/gemstones/cliout"
)

// printResult prints data, or reports that there is none. With no result,
// default mode prints nothing and JSON mode prints null.
func printResult(opts *rootOptions, found bool, data interface{}, text func()) error {
	if !found {
		if cliout.IsJSON() {
			if err := cliout.PrintJSON(nil); err != nil {
				return err
			}
		}
		if opts.strict {
			return errNoResult
		}
		return nil
	}
	return cliout.Print(data, text)
}

// printLine writes s and a line break unless s already ends with one.
func printLine(s string) {
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	cliout.Raw(s)
}

func parseLineNumber(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number, got %q", name, s)
	}
	return n, nil
}

func parseTag(name, s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%s must be a single character, got %q", name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
