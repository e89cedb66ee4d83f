package installer

import (
	"fmt"
	"strings"

	"install-deps/internal/cmdutil"
	"install-deps/internal/config"
	"install-deps/internal/logger"
)

// Choco wraps the Chocolatey package manager operations the Windows
// strategy needs: CI cache and config setup, skip-list filtering, and the
// install run itself.
type Choco struct {
	run cmdutil.Runner
}

// ConfigureCI prepares Chocolatey for a CI run: points the download cache at
// a shared location that the CI system can persist between jobs, then applies
// the configured config edits.
func (c *Choco) ConfigureCI(ci config.ChocoCIConfig) error {
	if ci.CacheDir != "" {
		logger.Info("Configuring Chocolatey cache at: %s\n", ci.CacheDir)
		command := fmt.Sprintf(`choco config set cacheLocation "%s"`, ci.CacheDir)
		if err := c.run.Run(command, true); err != nil {
			return err
		}
	}

	for key, value := range ci.EditConfig {
		logger.Debug("[DEBUG] Setting Chocolatey config %s = %s\n", key, value)
		command := fmt.Sprintf(`choco config set --name %s --value "%s"`, key, value)
		if err := c.run.Run(command, true); err != nil {
			return err
		}
	}
	return nil
}

// StripSkipped removes the skip-listed package tokens from the install
// command derived for this run. CI runner images ship some packages
// pre-installed; reinstalling them wastes minutes per job. Only the command
// string is edited, never the configuration it came from.
func (c *Choco) StripSkipped(command string, skip []string) string {
	if len(skip) == 0 {
		return command
	}

	skipSet := make(map[string]bool, len(skip))
	for _, pkg := range skip {
		skipSet[pkg] = true
	}

	var kept []string
	for _, token := range strings.Fields(command) {
		if skipSet[token] {
			logger.Info("Skipping package on CI: %s\n", token)
			continue
		}
		kept = append(kept, token)
	}
	return strings.Join(kept, " ")
}

// Install runs the resolved Chocolatey command with strict exit checking.
// CI runs suppress the per-package progress output, which floods CI logs.
func (c *Choco) Install(command string, ci bool) error {
	if ci {
		command += " --no-progress"
	}
	return c.run.Run(command, true)
}
