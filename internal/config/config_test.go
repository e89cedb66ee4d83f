package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const sampleYAML = `
windows:
  command: choco install cmake ninja -y
  qt:
    version: "6.7.2"
    install_dir: 'C:\Qt'
    mirror_url: https://qt.example.com/desktop
    arch: win64_msvc2022_64
    modules:
      - qtbase
      - qttools
  choco_ci:
    cache_dir: 'C:\choco-cache'
    edit_config:
      commandExecutionTimeoutSeconds: "9000"
    skip_packages:
      - cmake

mac:
  command: brew install cmake qt@6
  qt_prefix_command: brew --prefix qt@6

linux:
  debian:
    command: sudo apt-get install -y cmake
  fedora:
    command: sudo dnf install -y cmake
`

func loadSample(t *testing.T) *Config {
	t.Helper()

	path := filepath.Join(t.TempDir(), "deps.yaml")
	if err := os.WriteFile(path, []byte(sampleYAML), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return cfg
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("loading a missing file should fail")
	}
}

func TestCommands(t *testing.T) {
	cfg := loadSample(t)

	if cmd, err := cfg.WindowsCommand(); err != nil || cmd != "choco install cmake ninja -y" {
		t.Errorf("WindowsCommand = %q, %v", cmd, err)
	}
	if cmd, err := cfg.MacCommand(); err != nil || cmd != "brew install cmake qt@6" {
		t.Errorf("MacCommand = %q, %v", cmd, err)
	}
	if cmd, err := cfg.MacQtPrefixCommand(); err != nil || cmd != "brew --prefix qt@6" {
		t.Errorf("MacQtPrefixCommand = %q, %v", cmd, err)
	}
	if cmd, err := cfg.LinuxCommand("fedora"); err != nil || cmd != "sudo dnf install -y cmake" {
		t.Errorf("LinuxCommand = %q, %v", cmd, err)
	}
}

func TestLinuxCommand_UnsupportedDistro(t *testing.T) {
	cfg := loadSample(t)

	_, err := cfg.LinuxCommand("gentoo")

	var unsupported *UnsupportedDistroError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedDistroError, got %v", err)
	}
	if unsupported.Distro != "gentoo" {
		t.Errorf("error should carry the distro, got %q", unsupported.Distro)
	}
}

func TestMissingKeysAreConfigErrors(t *testing.T) {
	empty := &Config{}

	checks := []struct {
		name string
		call func() error
	}{
		{"windows.command", func() error { _, err := empty.WindowsCommand(); return err }},
		{"mac.command", func() error { _, err := empty.MacCommand(); return err }},
		{"mac.qt_prefix_command", func() error { _, err := empty.MacQtPrefixCommand(); return err }},
		{"windows.qt.version", func() error { _, err := empty.Qt(); return err }},
	}

	for _, check := range checks {
		t.Run(check.name, func(t *testing.T) {
			err := check.call()

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected ConfigError, got %v", err)
			}
			if cfgErr.Key != check.name {
				t.Errorf("Key = %q, want %q", cfgErr.Key, check.name)
			}
		})
	}
}

func TestQt(t *testing.T) {
	cfg := loadSample(t)

	qt, err := cfg.Qt()
	if err != nil {
		t.Fatalf("Qt failed: %v", err)
	}
	if qt.Version != "6.7.2" || qt.InstallDir != `C:\Qt` || qt.Arch != "win64_msvc2022_64" {
		t.Errorf("unexpected Qt config: %+v", qt)
	}
	if !reflect.DeepEqual(qt.Modules, []string{"qtbase", "qttools"}) {
		t.Errorf("Modules = %v", qt.Modules)
	}
}

func TestQt_ArchiveExt(t *testing.T) {
	cfg := loadSample(t)

	qt, err := cfg.Qt()
	if err != nil {
		t.Fatalf("Qt failed: %v", err)
	}
	if qt.ArchiveExt != "7z" {
		t.Errorf("ArchiveExt should default to 7z, got %q", qt.ArchiveExt)
	}

	cfg.Windows.Qt.ArchiveExt = ".tar.xz"
	if qt, err = cfg.Qt(); err != nil {
		t.Fatalf("Qt failed: %v", err)
	}
	if qt.ArchiveExt != "tar.xz" {
		t.Errorf("ArchiveExt should drop a leading dot, got %q", qt.ArchiveExt)
	}
}

func TestQt_ModulesDefault(t *testing.T) {
	cfg := loadSample(t)
	cfg.Windows.Qt.Modules = nil

	qt, err := cfg.Qt()
	if err != nil {
		t.Fatalf("Qt failed: %v", err)
	}
	if !reflect.DeepEqual(qt.Modules, []string{"qtbase"}) {
		t.Errorf("Modules should default to qtbase, got %v", qt.Modules)
	}
}

func TestChocoCI(t *testing.T) {
	cfg := loadSample(t)

	ci := cfg.ChocoCI()
	if ci.CacheDir != `C:\choco-cache` {
		t.Errorf("CacheDir = %q", ci.CacheDir)
	}
	if ci.EditConfig["commandExecutionTimeoutSeconds"] != "9000" {
		t.Errorf("EditConfig = %v", ci.EditConfig)
	}
	if !reflect.DeepEqual(ci.SkipPackages, []string{"cmake"}) {
		t.Errorf("SkipPackages = %v", ci.SkipPackages)
	}
}

func TestDistros(t *testing.T) {
	cfg := loadSample(t)

	if got := cfg.Distros(); !reflect.DeepEqual(got, []string{"debian", "fedora"}) {
		t.Errorf("Distros = %v", got)
	}
}
