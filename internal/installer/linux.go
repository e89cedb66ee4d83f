package installer

import (
	"fmt"
	"strings"

	"install-deps/internal/logger"
)

// linux installs dependencies through the native package manager configured
// for the detected distro. Steps: fail if no distro was detected, resolve
// the per-distro command, strip sudo when it is not installed, then run the
// command without checking its exit code.
func (d *Dependencies) linux() error {
	distro := d.host.Distro
	if distro == "" {
		return fmt.Errorf("unable to detect Linux distro")
	}
	logger.Debug("[DEBUG] Detected Linux distro: %s\n", distro)

	command, err := d.cfg.LinuxCommand(distro)
	if err != nil {
		logger.Debug("[DEBUG] Configured distros: %s\n", strings.Join(d.cfg.Distros(), ", "))
		return err
	}

	command = d.stripSudo(command)

	// Don't check the exit code, as some package managers return non-zero
	// exit codes under normal circumstances (e.g. dnf returns 100 when
	// there are updates available).
	return d.run.Run(command, false)
}

// stripSudo removes the sudo invocation from the command when the sudo
// executable is absent from PATH, assuming the process already runs as root
// (common on older distros and minimal containers). The trailing space is
// part of the replaced token so the remaining command stays intact. Known
// limitation: a package whose name contains "sudo " would also be mangled,
// which is considered unlikely enough to ignore.
func (d *Dependencies) stripSudo(command string) string {
	if strings.Contains(command, "sudo") && !d.hasCommand("sudo") {
		logger.Info("The 'sudo' command was not found, stripping sudo from command\n")
		return strings.TrimSpace(strings.ReplaceAll(command, "sudo ", ""))
	}
	return command
}
