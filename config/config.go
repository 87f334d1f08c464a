// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/gemstones-dev/gemstones/lineedit"
	"github.com/gemstones-dev/gemstones/logutil"
	"github.com/gemstones-dev/gemstones/pattern"
	"github.com/gemstones-dev/gemstones/security"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = ".gemstones.yaml"

// Environment overrides, applied after the config file.
const (
	EnvDebug     = logutil.EnvDebug
	EnvEncoding  = "GEMSTONES_ENCODING"
	EnvWriteMode = "GEMSTONES_WRITE_MODE"
	EnvOutput    = "GEMSTONES_OUTPUT"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// MCPSettings configures the MCP server.
type MCPSettings struct {
	// AllowedBases limits tool paths to these directories. Empty means the
	// working directory only.
	AllowedBases []string `yaml:"allowedBases,omitempty" json:"allowedBases,omitempty"`
	// RateLimit is the sustained number of tool calls per second.
	RateLimit float64 `yaml:"rateLimit" json:"rateLimit"`
	// Burst is the number of calls allowed at once.
	Burst int `yaml:"burst" json:"burst"`
}

// Settings is the process-wide configuration.
type Settings struct {
	Debug       bool        `yaml:"debug" json:"debug"`
	Structured  bool        `yaml:"structured" json:"structured"`
	Encoding    string      `yaml:"encoding" json:"encoding"`
	WriteMode   string      `yaml:"writeMode" json:"writeMode"`
	Terminator  string      `yaml:"terminator" json:"terminator"`
	IgnoreNames []string    `yaml:"ignoreNames,omitempty" json:"ignoreNames,omitempty"`
	Output      string      `yaml:"output" json:"output"`
	MetricsPort int         `yaml:"metricsPort" json:"metricsPort"`
	MCP         MCPSettings `yaml:"mcp" json:"mcp"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Encoding:    lineedit.DefaultEncoding,
		WriteMode:   lineedit.WriteAtomic.String(),
		Terminator:  lineedit.DefaultTerminator,
		IgnoreNames: []string{".git", ".hg", ".svn", "node_modules", "__pycache__"},
		Output:      "default",
		MCP: MCPSettings{
			RateLimit: 10,
			Burst:     20,
		},
	}
}

// Load reads YAML settings from path on top of Default. A missing file is
// not an error. Unknown keys are.
func Load(path string) (*Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	if err := security.ValidatePath(path); err != nil {
		return nil, fmt.Errorf("invalid config path: %w", err)
	}

	// #nosec G304 -- Path validated by security.ValidatePath
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logutil.Debug("no config file, using defaults", "path", path)
			return s, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := security.ValidateFilePermissions(path); err != nil {
		logutil.Warn("config file is writable by others", "path", path, "error", err)
	}

	if err := decode(data, s); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return s, nil
}

// decode strictly decodes YAML data onto s. Empty input leaves s unchanged.
func decode(data []byte, s *Settings) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv overrides settings from GEMSTONES_* environment variables.
func (s *Settings) ApplyEnv() error {
	if v, ok := os.LookupEnv(EnvDebug); ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a boolean", ErrInvalidConfig, EnvDebug, v)
		}
		s.Debug = debug
	}
	if v := os.Getenv(EnvEncoding); v != "" {
		s.Encoding = v
	}
	if v := os.Getenv(EnvWriteMode); v != "" {
		s.WriteMode = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		s.Output = v
	}
	return nil
}

// Validate checks every field and reports all problems at once.
func (s *Settings) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if _, err := s.StoreOptions(); err != nil {
		errs = append(errs, err)
	}
	switch s.Terminator {
	case "\n", "\r\n", "\r":
	default:
		add("terminator must be \"\\n\", \"\\r\\n\" or \"\\r\", got %q", s.Terminator)
	}
	switch s.Output {
	case "", "default", "json":
	default:
		add("output must be default or json, got %q", s.Output)
	}
	if s.MetricsPort < 0 || s.MetricsPort > 65535 {
		add("metricsPort %d out of range", s.MetricsPort)
	}
	if s.MCP.RateLimit < 0 {
		add("mcp.rateLimit must not be negative")
	}
	if s.MCP.RateLimit > 0 && s.MCP.Burst < 1 {
		add("mcp.burst must be at least 1 when mcp.rateLimit is set")
	}
	if _, err := pattern.SkipMatching(s.IgnoreNames...); err != nil {
		errs = append(errs, err)
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

// StoreOptions converts the settings to line store options.
func (s *Settings) StoreOptions() (lineedit.Options, error) {
	mode, err := lineedit.ParseWriteMode(s.WriteMode)
	if err != nil {
		return lineedit.Options{}, err
	}
	// Resolve the encoding now so a bad label fails at startup.
	if _, err := lineedit.NewStore(lineedit.Options{Encoding: s.Encoding}); err != nil {
		return lineedit.Options{}, err
	}
	return lineedit.Options{
		Encoding:   s.Encoding,
		WriteMode:  mode,
		Terminator: s.Terminator,
		Logger:     logutil.NewLogger("lineedit"),
	}, nil
}

// Skipper returns a skipper for IgnoreNames. Entries may be globs.
func (s *Settings) Skipper() pattern.Skipper {
	skip, err := pattern.SkipMatching(s.IgnoreNames...)
	if err != nil {
		// Validate rejects these; fall back to exact names.
		return pattern.SkipNames(s.IgnoreNames...)
	}
	return skip
}

// Clone returns a deep copy.
func (s *Settings) Clone() *Settings {
	c := *s
	c.IgnoreNames = append([]string(nil), s.IgnoreNames...)
	c.MCP.AllowedBases = append([]string(nil), s.MCP.AllowedBases...)
	return &c
}

// String renders the settings as YAML.
func (s *Settings) String() string {
	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(2)
	_ = enc.Encode(s)
	_ = enc.Close()
	return b.String()
}
