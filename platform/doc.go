// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package platform reports which operating system the process runs on.
//
// IsWindows, IsMacOS and IsLinux are cheap runtime checks. Describe adds host
// details (distribution, version, kernel) through
// github.com/shirou/gopsutil/v4/host, which reads /proc on Linux, sysctl on
// macOS and BSD, and the native API on Windows:
//
//	info, err := platform.Describe(ctx)
//	if err != nil {
//	    logutil.Debug("host details unavailable", "error", err)
//	}
//	fmt.Println(info) // linux/amd64 (ubuntu 24.04)
package platform
