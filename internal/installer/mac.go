package installer

import (
	"os"

	"install-deps/internal/logger"
)

// mac installs dependencies via the configured Homebrew command, then (on
// interactive runs) exports CMAKE_PREFIX_PATH so the build can find Qt.
// CI runners configure toolchain discovery themselves, so the export is
// skipped there.
func (d *Dependencies) mac() error {
	command, err := d.cfg.MacCommand()
	if err != nil {
		return err
	}

	if err := d.run.Run(command, true); err != nil {
		return err
	}

	if d.host.CI {
		return nil
	}
	return d.setCMakePrefix()
}

// setCMakePrefix queries the configured helper command (typically
// `brew --prefix qt@6`) and exports its output as CMAKE_PREFIX_PATH for the
// current process tree.
func (d *Dependencies) setCMakePrefix() error {
	prefixCommand, err := d.cfg.MacQtPrefixCommand()
	if err != nil {
		return err
	}

	prefix, err := d.run.Output(prefixCommand)
	if err != nil {
		return err
	}

	logger.Info("Setting CMAKE_PREFIX_PATH to %s\n", prefix)
	return os.Setenv("CMAKE_PREFIX_PATH", prefix)
}
