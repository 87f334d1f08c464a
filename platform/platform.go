// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package platform

import (
	"context"
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
)

// goos is swapped in tests.
var goos = runtime.GOOS

// IsWindows reports whether the process runs on Windows.
func IsWindows() bool { return goos == "windows" }

// IsMacOS reports whether the process runs on macOS.
func IsMacOS() bool { return goos == "darwin" }

// IsLinux reports whether the process runs on Linux.
func IsLinux() bool { return goos == "linux" }

// Info describes the host the process runs on.
type Info struct {
	OS              string `json:"os"`
	Arch            string `json:"arch"`
	Hostname        string `json:"hostname,omitempty"`
	Platform        string `json:"platform,omitempty"`
	PlatformFamily  string `json:"platformFamily,omitempty"`
	PlatformVersion string `json:"platformVersion,omitempty"`
	KernelVersion   string `json:"kernelVersion,omitempty"`
}

// hostInfo is swapped in tests.
var hostInfo = host.InfoWithContext

// Describe returns host details. OS and Arch are always filled from the Go
// runtime; the rest comes from the operating system and is left empty when it
// cannot be queried, in which case the error is returned alongside.
func Describe(ctx context.Context) (Info, error) {
	info := Info{OS: goos, Arch: runtime.GOARCH}

	stat, err := hostInfo(ctx)
	if err != nil {
		return info, fmt.Errorf("failed to query host info: %w", err)
	}

	info.Hostname = stat.Hostname
	info.Platform = stat.Platform
	info.PlatformFamily = stat.PlatformFamily
	info.PlatformVersion = stat.PlatformVersion
	info.KernelVersion = stat.KernelVersion
	return info, nil
}

// String renders the info on one line, e.g. "linux/amd64 (ubuntu 24.04)".
func (i Info) String() string {
	s := i.OS + "/" + i.Arch
	if i.Platform != "" {
		s += " (" + i.Platform
		if i.PlatformVersion != "" {
			s += " " + i.PlatformVersion
		}
		s += ")"
	}
	return s
}
