// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package version holds build information for the gemstones binary and the
// command that prints it.
package version

import "fmt"

// Set via -ldflags "-X github.com/gemstones-dev/gemstones/version.Version=..."
var (
	Version   = "0.0.0-dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// Info holds version information for a build.
type Info struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	BuildDate string `json:"buildDate"`
	GitCommit string `json:"gitCommit"`
	Host      string `json:"host,omitempty"`
}

// New returns the Info of the running binary.
func New(name string) *Info {
	return &Info{
		Name:      name,
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	}
}

// String returns a human-readable version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s version %s (commit: %s, built: %s)", i.Name, i.Version, i.GitCommit, i.BuildDate)
}
