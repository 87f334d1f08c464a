// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gemstones-dev/gemstones/fileutil"
	"github.com/gemstones-dev/gemstones/lineedit"
	"gopkg.in/yaml.v3"
)

type valueKind int

const (
	kindString valueKind = iota
	kindBool
	kindInt
	kindFloat
)

// settableKeys are the scalar keys SetValue can edit.
var settableKeys = map[string]valueKind{
	"debug":         kindBool,
	"structured":    kindBool,
	"encoding":      kindString,
	"writeMode":     kindString,
	"terminator":    kindString,
	"output":        kindString,
	"metricsPort":   kindInt,
	"mcp.rateLimit": kindFloat,
	"mcp.burst":     kindInt,
}

// SettableKeys returns the keys SetValue accepts, dotted for nested ones.
func SettableKeys() []string {
	keys := make([]string, 0, len(settableKeys))
	for k := range settableKeys {
		keys = append(keys, k)
	}
	return keys
}

// SetValue sets a scalar key in the YAML file at path, editing only the line
// that holds it so comments and layout survive. Nested keys are dotted
// ("mcp.burst"). Missing keys are added at the end of their section and a
// missing file is created. The result must load and validate, otherwise the
// file is left untouched.
func SetValue(path, key, value string) error {
	kind, ok := settableKeys[key]
	if !ok {
		return fmt.Errorf("%w: %q is not a settable key", ErrInvalidConfig, key)
	}
	scalar, err := formatScalar(kind, key, value)
	if err != nil {
		return err
	}

	// Config files are always UTF-8, whatever the default store uses.
	store, err := lineedit.NewStore(lineedit.Options{})
	if err != nil {
		return err
	}

	lines, err := store.ReadLines(path)
	if err != nil && !errors.Is(err, lineedit.ErrNotFound) {
		return err
	}

	updated, err := setInLines(lines, strings.Split(key, "."), scalar)
	if err != nil {
		return err
	}

	if err := checkContent(strings.Join(updated, "")); err != nil {
		return err
	}

	if err := fileutil.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return store.WriteLines(path, updated)
}

func formatScalar(kind valueKind, key, value string) (string, error) {
	invalid := func(err error) error {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
	}

	switch kind {
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return "", invalid(err)
		}
		return strconv.FormatBool(b), nil
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return "", invalid(err)
		}
		return strconv.Itoa(n), nil
	case kindFloat:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return "", invalid(err)
		}
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	}

	if key == "terminator" {
		// Accept escaped forms such as `\r\n` from the command line.
		if unquoted, err := strconv.Unquote(`"` + value + `"`); err == nil {
			value = unquoted
		}
	}
	if isPlainScalar(value) {
		return value, nil
	}
	return strconv.Quote(value), nil
}

// isPlainScalar reports whether s can be written unquoted and still read
// back as the same string.
func isPlainScalar(s string) bool {
	if s == "" {
		return false
	}
	switch strings.ToLower(s) {
	case "true", "false", "yes", "no", "on", "off", "null", "~":
		return false
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-' || r == '_' || r == '.' || r == '/':
		default:
			return false
		}
	}
	return s[0] != '-'
}

// setInLines returns a copy of lines with keys set to scalar.
func setInLines(lines []string, keys []string, scalar string) ([]string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(strings.Join(lines, "")), &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	var mapping *yaml.Node
	if len(root.Content) > 0 {
		mapping = root.Content[0]
		if mapping.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("%w: top level is not a mapping", ErrInvalidConfig)
		}
	}

	out := append([]string(nil), lines...)
	indent := ""
	for i, k := range keys {
		keyNode, valueNode := lookup(mapping, k)
		if keyNode == nil {
			return insertKeys(out, mapping, indent, keys[i:], scalar), nil
		}

		if i == len(keys)-1 {
			if valueNode.Kind != yaml.ScalarNode || valueNode.Line != keyNode.Line {
				return nil, fmt.Errorf("%w: %s is not a single-line value", ErrInvalidConfig, strings.Join(keys, "."))
			}
			idx := keyNode.Line - 1
			content := strings.Repeat(" ", keyNode.Column-1) + k + ": " + scalar
			if comment := lineComment(keyNode, valueNode); comment != "" {
				content += " " + comment
			}
			out[idx] = content + terminatorOf(out[idx])
			return out, nil
		}

		if valueNode.Kind != yaml.MappingNode || valueNode.Style&yaml.FlowStyle != 0 {
			return nil, fmt.Errorf("%w: %s is not a block mapping", ErrInvalidConfig, k)
		}
		indent = strings.Repeat(" ", keyNode.Column-1+2)
		if len(valueNode.Content) > 0 {
			indent = strings.Repeat(" ", valueNode.Content[0].Column-1)
		}
		mapping = valueNode
	}
	return out, nil
}

func lineComment(key, value *yaml.Node) string {
	if value.LineComment != "" {
		return value.LineComment
	}
	return key.LineComment
}

func lookup(mapping *yaml.Node, key string) (*yaml.Node, *yaml.Node) {
	if mapping == nil {
		return nil, nil
	}
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		if mapping.Content[i].Value == key {
			return mapping.Content[i], mapping.Content[i+1]
		}
	}
	return nil, nil
}

// insertKeys adds the missing keys after the last line of mapping, or at the
// end of the file for the top level.
func insertKeys(lines []string, mapping *yaml.Node, indent string, keys []string, scalar string) []string {
	at := len(lines)
	if indent != "" && mapping != nil {
		at = lastLine(mapping)
	}

	var added []string
	for i, k := range keys {
		if i == len(keys)-1 {
			added = append(added, indent+k+": "+scalar+"\n")
			break
		}
		added = append(added, indent+k+":\n")
		indent += "  "
	}

	out := make([]string, 0, len(lines)+len(added))
	out = append(out, lines[:at]...)
	if at > 0 && !strings.HasSuffix(out[at-1], "\n") {
		out[at-1] += "\n"
	}
	out = append(out, added...)
	return append(out, lines[at:]...)
}

// lastLine returns the highest 1-based line used by n or its children.
func lastLine(n *yaml.Node) int {
	last := n.Line
	for _, c := range n.Content {
		if l := lastLine(c); l > last {
			last = l
		}
	}
	return last
}

func terminatorOf(line string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(line, "\n"):
		return "\n"
	default:
		return ""
	}
}

// checkContent loads content the way Load does and validates it.
func checkContent(content string) error {
	s := Default()
	if err := decode([]byte(content), s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return s.Validate()
}
