package installer

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"install-deps/internal/logger"
)

// windows installs dependencies on Windows. The strategy is linear:
// elevate (or rather, relaunch elevated and stop), install the Qt toolkit,
// then drive Chocolatey for everything else.
//
// Qt is handled outside Chocolatey so CI can cache the install directory
// between jobs: normal CI runs skip it entirely (a separate toolkit-only
// invocation fills the cache), while `--only qt` installs just the toolkit
// and returns without touching the package manager.
func (d *Dependencies) windows() (Status, error) {
	if !d.host.Admin {
		logger.Warn("Administrator privileges required, relaunching elevated...\n")
		if err := d.relaunch(); err != nil {
			return StatusDone, err
		}
		// The elevated copy owns the rest of the run; this instance is done.
		return StatusRelaunchPending, nil
	}

	onlyQt := d.only == "qt"

	// For CI, skip Qt; it is installed separately so it can be cached.
	if !d.host.CI || onlyQt {
		qtCfg, err := d.cfg.Qt()
		if err != nil {
			return StatusDone, err
		}
		qt := NewWindowsQt(qtCfg, d.run)

		if dir := qt.InstallDir(); dir != "" {
			logger.Info("Skipping Qt, already installed at: %s\n", dir)
		} else if err := qt.Install(); err != nil {
			return StatusDone, err
		}

		if !d.host.CI {
			// Persist env vars for later build steps; CI jobs configure
			// their own environment and must not be left with them.
			if err := qt.SetEnvVars(); err != nil {
				return StatusDone, err
			}
		}

		if onlyQt {
			return StatusDone, nil
		}
	}

	command, err := d.cfg.WindowsCommand()
	if err != nil {
		return StatusDone, err
	}

	choco := &Choco{run: d.run}
	if d.host.CI {
		ci := d.cfg.ChocoCI()
		if err := choco.ConfigureCI(ci); err != nil {
			return StatusDone, err
		}
		// Only the command derived for this run is edited; the loaded
		// configuration itself is never mutated.
		command = choco.StripSkipped(command, ci.SkipPackages)
	}

	return StatusDone, choco.Install(command, d.host.CI)
}

// relaunchElevated spawns a copy of the current process with an elevation
// request (UAC prompt) via PowerShell and returns without waiting for it.
// The original process never observes the elevated child's outcome.
func relaunchElevated() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate own executable: %w", err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to determine working directory: %w", err)
	}
	args := strings.Join(os.Args[1:], " ")

	// Start-Process -Verb RunAs triggers the UAC elevation prompt.
	cmd := exec.Command("powershell", "Start-Process",
		"-FilePath", fmt.Sprintf("'%s'", exe),
		"-ArgumentList", fmt.Sprintf("'%s'", args),
		"-Verb", "RunAs",
		"-WorkingDirectory", fmt.Sprintf("'%s'", cwd))

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to relaunch elevated: %w", err)
	}
	return nil
}
