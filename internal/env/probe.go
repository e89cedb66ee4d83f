// Package env answers read-only questions about the host the tool runs on:
// which OS family, which Linux distro, whether this is a CI run, and whether
// the process has administrator rights. It never mutates the system and
// never touches the network.
package env

import (
	"bufio"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Family identifies the OS family the installer dispatches on.
// It is a closed enumeration; anything Go runs on that is not one of the
// three supported platforms maps to Unknown and fails installation.
type Family string

const (
	Windows Family = "windows"
	Mac     Family = "mac"
	Linux   Family = "linux"
	Unknown Family = "unknown"
)

// Host is an immutable snapshot of the environment, taken once per run and
// threaded through the platform strategy. Distro is only meaningful when
// OS == Linux and is empty when no distro could be detected.
type Host struct {
	OS     Family
	Distro string
	CI     bool
	Admin  bool
}

// Snapshot probes the environment once and returns the Host descriptor.
// Distro detection failure is deliberately not fatal here; the Linux
// strategy treats an empty Distro as a fatal detection error before it
// resolves any command.
func Snapshot() Host {
	host := Host{
		OS:    DetectOS(),
		CI:    IsCI(),
		Admin: IsAdmin(),
	}
	if host.OS == Linux {
		if distro, err := DetectLinuxDistro(); err == nil {
			host.Distro = distro
		}
	}
	return host
}

// DetectOS maps the Go runtime OS onto the installer's platform families.
func DetectOS() Family {
	switch runtime.GOOS {
	case "windows":
		return Windows
	case "darwin":
		return Mac
	case "linux":
		return Linux
	default:
		return Unknown
	}
}

// releaseFiles maps distro-specific marker files to a distro id, used as a
// fallback when /etc/os-release is missing (mostly older or minimal systems).
var releaseFiles = map[string]string{
	"/etc/debian_version": "debian",
	"/etc/fedora-release": "fedora",
	"/etc/centos-release": "centos",
	"/etc/redhat-release": "rhel",
	"/etc/arch-release":   "arch",
	"/etc/alpine-release": "alpine",
	"/etc/SuSE-release":   "opensuse",
}

// DetectLinuxDistro identifies the running Linux distribution.
// It parses /etc/os-release first (ID, then the first ID_LIKE entry so
// derivatives resolve to the distro family their package manager comes
// from), then falls back to distro marker files. An error means no
// recognizable distro marker was found anywhere.
func DetectLinuxDistro() (string, error) {
	if distro, err := parseOSRelease("/etc/os-release"); err == nil {
		return distro, nil
	}

	for file, distro := range releaseFiles {
		if _, err := os.Stat(file); err == nil {
			return distro, nil
		}
	}

	return "", fmt.Errorf("no recognizable Linux distro marker found")
}

// parseOSRelease extracts a distro id from an os-release formatted file.
func parseOSRelease(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var id, idLike string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		value := strings.Trim(strings.TrimSpace(parts[1]), `"`)

		switch strings.TrimSpace(parts[0]) {
		case "ID":
			id = value
		case "ID_LIKE":
			// ID_LIKE can list several parents; the first is the closest.
			if fields := strings.Fields(value); len(fields) > 0 {
				idLike = fields[0]
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	if id != "" {
		return id, nil
	}
	if idLike != "" {
		return idLike, nil
	}
	return "", fmt.Errorf("no ID in %s", path)
}

// IsCI reports whether the run happens inside a CI environment, detected via
// the conventional CI environment variable set by all major CI providers.
func IsCI() bool {
	return os.Getenv("CI") != ""
}

// HasCommand reports whether an executable with the given name can be
// resolved on PATH.
func HasCommand(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// IsAdmin reports whether the process has administrator rights.
// On Windows, `net session` only succeeds from an elevated shell, so its
// exit status doubles as a privilege probe. Elsewhere we check for root,
// though only the Windows strategy actually consults this.
func IsAdmin() bool {
	if runtime.GOOS == "windows" {
		return exec.Command("net", "session").Run() == nil
	}
	return os.Geteuid() == 0
}
