// Package installer contains the per-platform installation strategies and
// the dispatch logic that selects exactly one of them for the detected OS.
package installer

import (
	"fmt"

	"install-deps/internal/cmdutil"
	"install-deps/internal/config"
	"install-deps/internal/env"
	"install-deps/internal/logger"
)

// Status is the terminal state of an installation run.
type Status int

const (
	// StatusDone means the strategy ran to completion.
	StatusDone Status = iota

	// StatusRelaunchPending means the process relaunched itself elevated
	// (Windows only) and this instance did no installation work. It is a
	// successful outcome, not an error; the elevated copy carries on.
	StatusRelaunchPending
)

// Dependencies is one installation session: the loaded configuration, the
// host snapshot taken at startup, and the optional --only filter. There is
// no shared state across sessions and no retry anywhere; every fatal error
// propagates straight to the caller.
type Dependencies struct {
	cfg  *config.Config
	host env.Host
	only string
	run  cmdutil.Runner

	// Seams overridden in tests; the defaults touch the real system.
	relaunch   func() error      // Spawn an elevated copy of this process
	hasCommand func(string) bool // PATH lookup, used for sudo detection
}

// New creates an installation session for the given host snapshot.
// only restricts installation to a single dependency ("qt" is the only name
// with special meaning, and only on Windows); empty means install everything.
func New(cfg *config.Config, host env.Host, only string) *Dependencies {
	if host.CI {
		logger.Info("CI environment detected\n")
	}
	return &Dependencies{
		cfg:        cfg,
		host:       host,
		only:       only,
		run:        cmdutil.ShellRunner{},
		relaunch:   relaunchElevated,
		hasCommand: env.HasCommand,
	}
}

// Install dispatches to the strategy matching the host OS family.
// Exactly one strategy runs per session; an unrecognized family is a fatal
// configuration error and no command is ever executed for it.
func (d *Dependencies) Install() (Status, error) {
	logger.Debug("[DEBUG] Installing dependencies for platform %s\n", d.host.OS)

	switch d.host.OS {
	case env.Windows:
		return d.windows()
	case env.Mac:
		return StatusDone, d.mac()
	case env.Linux:
		return StatusDone, d.linux()
	default:
		return StatusDone, fmt.Errorf("unsupported platform: %s", d.host.OS)
	}
}
