package main

import (
	"install-deps/cmd" // Import the cmd package which contains the CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// This design cleanly separates the CLI interface (cmd package) from main,
// allowing easier testing, extension, and reuse of the CLI commands.
//
// The install-deps project bootstraps build dependencies for a multi-platform
// project so that a fresh developer workstation or CI runner can compile it:
//   - Detects the host platform (Windows, macOS, or a specific Linux distro)
//     and whether the run happens inside a CI environment
//   - Resolves the native package-manager command for that platform from a
//     declarative YAML configuration file (deps.yaml)
//   - Runs the resolved command through the platform shell, streaming output
//   - On Windows, additionally installs the Qt toolkit from an archive mirror
//     (skipped when the configured install directory already holds it) and
//     relaunches itself elevated when administrator rights are missing
//   - On Linux, strips the leading sudo from the configured command when the
//     sudo executable is absent, assuming the process already runs as root
//
// Error handling strategy:
//   - Platform strategies perform no local recovery; every failure propagates
//     to the install command, which prints the diagnostic and exits non-zero
//   - Two conditions are deliberately non-fatal: an already-installed Qt
//     toolkit is skipped with a notice, and Linux package managers run with
//     exit codes ignored because some of them (dnf) use non-zero codes for
//     benign conditions
//
// Integration points:
//   - Drives the native package managers directly (choco, brew, apt, dnf, ...)
//     rather than re-implementing package resolution
//   - Persists Windows environment variables (setx) pointing at the Qt
//     install so that later build steps can locate the toolkit
//   - Exports CMAKE_PREFIX_PATH on macOS for the current process tree
func main() {
	cmd.Execute()
}
