package config

import (
	"fmt"
	"sort"
	"strings"
)

// ConfigError reports a required configuration key that is missing or empty.
// A missing key is always fatal; the resolver never substitutes defaults for
// required values.
type ConfigError struct {
	Key string // Dotted path of the missing key, e.g. "windows.qt.version"
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing required config key: %s", e.Key)
}

// UnsupportedDistroError reports a Linux distro that has no configured
// install command. Callers must not attempt installation in that case.
type UnsupportedDistroError struct {
	Distro string
}

func (e *UnsupportedDistroError) Error() string {
	return fmt.Sprintf("no dependencies command configured for Linux distro: %s", e.Distro)
}

// WindowsCommand returns the generic package-install command for Windows.
func (c *Config) WindowsCommand() (string, error) {
	if c.Windows.Command == "" {
		return "", &ConfigError{Key: "windows.command"}
	}
	return c.Windows.Command, nil
}

// MacCommand returns the generic package-install command for macOS.
func (c *Config) MacCommand() (string, error) {
	if c.Mac.Command == "" {
		return "", &ConfigError{Key: "mac.command"}
	}
	return c.Mac.Command, nil
}

// MacQtPrefixCommand returns the helper command whose output is the Qt
// prefix path on macOS (used to export CMAKE_PREFIX_PATH).
func (c *Config) MacQtPrefixCommand() (string, error) {
	if c.Mac.QtPrefixCommand == "" {
		return "", &ConfigError{Key: "mac.qt_prefix_command"}
	}
	return c.Mac.QtPrefixCommand, nil
}

// LinuxCommand returns the install command configured for the given distro.
// It returns *UnsupportedDistroError when the distro has no entry, so the
// caller fails before any command is executed.
func (c *Config) LinuxCommand(distro string) (string, error) {
	entry, ok := c.Linux[distro]
	if !ok {
		return "", &UnsupportedDistroError{Distro: distro}
	}
	if entry.Command == "" {
		return "", &ConfigError{Key: "linux." + distro + ".command"}
	}
	return entry.Command, nil
}

// Qt returns the bundled Qt toolkit parameters, validating the required
// fields. Modules defaults to qtbase and the archive format to 7z,
// everything else must be configured.
func (c *Config) Qt() (QtConfig, error) {
	qt := c.Windows.Qt
	switch {
	case qt.Version == "":
		return QtConfig{}, &ConfigError{Key: "windows.qt.version"}
	case qt.InstallDir == "":
		return QtConfig{}, &ConfigError{Key: "windows.qt.install_dir"}
	case qt.MirrorURL == "":
		return QtConfig{}, &ConfigError{Key: "windows.qt.mirror_url"}
	case qt.Arch == "":
		return QtConfig{}, &ConfigError{Key: "windows.qt.arch"}
	}
	if len(qt.Modules) == 0 {
		qt.Modules = []string{"qtbase"}
	}
	if qt.ArchiveExt == "" {
		qt.ArchiveExt = "7z"
	} else {
		qt.ArchiveExt = strings.TrimPrefix(qt.ArchiveExt, ".")
	}
	return qt, nil
}

// ChocoCI returns the CI-only Chocolatey overrides. All fields are optional;
// empty values simply mean "nothing to override".
func (c *Config) ChocoCI() ChocoCIConfig {
	return c.Windows.ChocoCI
}

// Distros returns the sorted list of configured Linux distro ids,
// mainly for diagnostics when detection yields an unsupported distro.
func (c *Config) Distros() []string {
	distros := make([]string, 0, len(c.Linux))
	for distro := range c.Linux {
		distros = append(distros, distro)
	}
	sort.Strings(distros)
	return distros
}
