// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package version

import (
	"encoding/json"
	"runtime"
	"strings"
	"testing"

	"github.com/gemstones-dev/gemstones/cliout"
	"github.com/gemstones-dev/gemstones/testutil"
)

func TestNew_Defaults(t *testing.T) {
	info := New("gemstones")
	if info.Version != "0.0.0-dev" {
		t.Errorf("expected Version '0.0.0-dev', got %q", info.Version)
	}
	if info.BuildDate != "unknown" {
		t.Errorf("expected BuildDate 'unknown', got %q", info.BuildDate)
	}
	if info.GitCommit != "unknown" {
		t.Errorf("expected GitCommit 'unknown', got %q", info.GitCommit)
	}
	if info.Name != "gemstones" {
		t.Errorf("expected Name 'gemstones', got %q", info.Name)
	}
}

func TestNew_UsesLinkerValues(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })
	Version = "1.4.0"

	if got := New("gemstones").Version; got != "1.4.0" {
		t.Errorf("expected Version '1.4.0', got %q", got)
	}
}

func TestInfo_String(t *testing.T) {
	info := &Info{
		Version:   "1.2.3",
		BuildDate: "2024-01-01",
		GitCommit: "abc123",
		Name:      "gemstones",
	}
	got := info.String()
	expected := "gemstones version 1.2.3 (commit: abc123, built: 2024-01-01)"
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func setFormat(t *testing.T, format string) {
	t.Helper()
	if err := cliout.SetFormat(format); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = cliout.SetFormat("default") })
}

func TestNewCommand_HumanReadable(t *testing.T) {
	setFormat(t, "default")
	cmd := NewCommand(New("gemstones"))
	cmd.SetArgs([]string{})
	output := testutil.CaptureOutput(t, cmd.Execute)

	for _, want := range []string{"gemstones Version", "Version", "Build Date", "Git Commit"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
	if strings.Contains(output, "Host") {
		t.Errorf("host details should be opt-in, got:\n%s", output)
	}
}

func TestNewCommand_JSON(t *testing.T) {
	setFormat(t, "json")
	cmd := NewCommand(New("gemstones"))
	cmd.SetArgs([]string{})
	output := testutil.CaptureOutput(t, cmd.Execute)

	var parsed Info
	if err := json.Unmarshal([]byte(output), &parsed); err != nil {
		t.Fatalf("expected valid JSON, got error: %v\noutput: %s", err, output)
	}
	if parsed.Name != "gemstones" {
		t.Errorf("expected name 'gemstones', got %q", parsed.Name)
	}
	if parsed.Version != "0.0.0-dev" {
		t.Errorf("expected version '0.0.0-dev', got %q", parsed.Version)
	}
}

func TestNewCommand_Quiet(t *testing.T) {
	setFormat(t, "default")
	cmd := NewCommand(New("gemstones"))
	cmd.SetArgs([]string{"--quiet"})
	output := testutil.CaptureOutput(t, cmd.Execute)

	if got := strings.TrimSpace(output); got != "0.0.0-dev" {
		t.Errorf("expected '0.0.0-dev', got %q", got)
	}
}

func TestNewCommand_Host(t *testing.T) {
	setFormat(t, "default")
	cmd := NewCommand(New("gemstones"))
	cmd.SetArgs([]string{"--host"})
	output := testutil.CaptureOutput(t, cmd.Execute)

	if !strings.Contains(output, "Host") || !strings.Contains(output, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("expected host line, got:\n%s", output)
	}
}
