package config

// QtConfig holds the parameters needed to locate and install the bundled Qt toolkit.
// - Version: Qt version to install (e.g., "6.7.2").
// - InstallDir: Root directory the toolkit is unpacked into; the versioned
//   install lives at <InstallDir>/<Version>.
// - MirrorURL: Base URL of the archive mirror the toolkit is downloaded from.
// - Arch: Toolchain architecture string used in archive names (e.g., "win64_msvc2022_64").
// - ArchiveExt: Archive format the mirror serves; defaults to 7z (the
//   upstream Qt format), repackaging mirrors may use zip or tar variants.
// - Modules: Qt modules to fetch; defaults to qtbase when empty.
type QtConfig struct {
	Version    string   `yaml:"version"`
	InstallDir string   `yaml:"install_dir"`
	MirrorURL  string   `yaml:"mirror_url"`
	Arch       string   `yaml:"arch"`
	ArchiveExt string   `yaml:"archive_ext"`
	Modules    []string `yaml:"modules"`
}

// ChocoCIConfig holds Chocolatey overrides that only apply on CI runners.
// - CacheDir: Shared download cache location so CI can persist it between jobs.
// - EditConfig: Chocolatey config keys to set before installing (key -> value).
// - SkipPackages: Packages removed from the install command on CI, typically
//   because the runner image already ships them.
type ChocoCIConfig struct {
	CacheDir     string            `yaml:"cache_dir"`
	EditConfig   map[string]string `yaml:"edit_config"`
	SkipPackages []string          `yaml:"skip_packages"`
}

// WindowsConfig is the Windows section of deps.yaml.
type WindowsConfig struct {
	Command string        `yaml:"command"`  // Chocolatey install command for all Windows deps
	Qt      QtConfig      `yaml:"qt"`       // Bundled Qt toolkit parameters
	ChocoCI ChocoCIConfig `yaml:"choco_ci"` // CI-only Chocolatey overrides
}

// MacConfig is the macOS section of deps.yaml.
// QtPrefixCommand is a helper command whose output is the Qt prefix path
// (e.g., `brew --prefix qt@6`), exported as CMAKE_PREFIX_PATH after install.
type MacConfig struct {
	Command         string `yaml:"command"`
	QtPrefixCommand string `yaml:"qt_prefix_command"`
}

// DistroConfig is the per-distro entry under the linux section.
type DistroConfig struct {
	Command string `yaml:"command"` // Native package-manager install command
}

// Config is the top-level structure of deps.yaml. Lookups go through the
// typed accessor methods in resolver.go, which report missing keys as
// *ConfigError instead of silently defaulting.
type Config struct {
	Windows WindowsConfig           `yaml:"windows"`
	Mac     MacConfig               `yaml:"mac"`
	Linux   map[string]DistroConfig `yaml:"linux"` // Keyed by distro id (debian, fedora, ...)
}
