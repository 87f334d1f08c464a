// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"sync"

	"github.com/gemstones-dev/gemstones/cliout"
	"github.com/gemstones-dev/gemstones/lineedit"
	"github.com/gemstones-dev/gemstones/logutil"
)

var (
	mu          sync.RWMutex
	current     *Settings
	initialized bool
)

// Init installs s as the process-wide settings: it configures logging, the
// output format and the default line store. Only the first call has an
// effect; later calls return nil without changing anything.
func Init(s *Settings) error {
	mu.Lock()
	defer mu.Unlock()

	if initialized {
		return nil
	}
	if s == nil {
		s = Default()
	}
	if err := s.Validate(); err != nil {
		return err
	}

	logutil.SetupLogger(s.Debug, s.Structured)

	if err := cliout.SetFormat(s.Output); err != nil {
		return err
	}

	opts, err := s.StoreOptions()
	if err != nil {
		return err
	}
	store, err := lineedit.NewStore(opts)
	if err != nil {
		return err
	}
	lineedit.SetDefault(store)

	current = s.Clone()
	initialized = true
	logutil.Debug("settings initialized", "encoding", s.Encoding, "write_mode", s.WriteMode)
	return nil
}

// Current returns a copy of the installed settings, or the defaults before
// Init.
func Current() *Settings {
	mu.RLock()
	defer mu.RUnlock()
	if current == nil {
		return Default()
	}
	return current.Clone()
}

// Initialized reports whether Init has run since the last Teardown.
func Initialized() bool {
	mu.RLock()
	defer mu.RUnlock()
	return initialized
}

// Teardown undoes Init so it can run again.
func Teardown() {
	mu.Lock()
	defer mu.Unlock()

	current = nil
	initialized = false
	lineedit.SetDefault(nil)
	_ = cliout.SetFormat("default")
	logutil.SetupLogger(false, false)
}
