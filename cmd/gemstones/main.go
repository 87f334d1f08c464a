// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Command gemstones edits and searches text files line by line.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:]))
}
