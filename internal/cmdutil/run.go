// Package cmdutil executes shell command strings on behalf of the platform
// installers. Exactly one external process runs at a time and each call
// blocks until the process exits.
package cmdutil

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"install-deps/internal/logger"
)

// Runner is the seam the platform installers use to execute commands, so
// tests can substitute a fake that records invocations instead of spawning
// processes.
type Runner interface {
	// Run executes a shell command, streaming output to the process streams.
	// With check=true a non-zero exit becomes a *CommandError; with
	// check=false the exit code is ignored and only infrastructure failure
	// (e.g., no shell) is reported.
	Run(command string, check bool) error

	// Output executes a shell command and returns its trimmed stdout,
	// used for small helper queries like `brew --prefix qt@6`.
	Output(command string) (string, error)
}

// CommandError reports a command that exited non-zero under strict checking.
type CommandError struct {
	Command  string
	ExitCode int
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed with exit code %d", e.Command, e.ExitCode)
}

// ShellRunner runs commands through the platform shell: %COMSPEC% (cmd /C)
// on Windows, $SHELL or sh -c elsewhere.
type ShellRunner struct{}

// shellCommand wraps a command string in the platform shell invocation.
func shellCommand(command string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		shell := os.Getenv("COMSPEC")
		if shell == "" {
			shell = "cmd.exe"
		}
		return exec.Command(shell, "/C", command)
	}
	shell := os.Getenv("SHELL")
	if shell == "" {
		shell = "sh"
	}
	return exec.Command(shell, "-c", command)
}

// Run executes the command synchronously, wiring the child's streams to the
// current process so package-manager output stays visible.
func (ShellRunner) Run(command string, check bool) error {
	logger.Debug("[DEBUG] Running command: %s (check=%t)\n", command, check)

	cmd := shellCommand(command)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if !check {
			// Some package managers exit non-zero under normal circumstances
			// (dnf returns 100 when updates are available), so the caller
			// opted out of strict checking for this invocation.
			logger.Debug("[DEBUG] Ignoring exit code %d for: %s\n", exitErr.ExitCode(), command)
			return nil
		}
		return &CommandError{Command: command, ExitCode: exitErr.ExitCode()}
	}
	if err != nil {
		return fmt.Errorf("failed to run %q: %w", command, err)
	}
	return nil
}

// Output executes the command and captures its stdout, trimmed of
// surrounding whitespace. Stderr passes through to the user.
func (ShellRunner) Output(command string) (string, error) {
	logger.Debug("[DEBUG] Capturing output of: %s\n", command)

	cmd := shellCommand(command)
	cmd.Stderr = os.Stderr

	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("failed to run %q: %w", command, err)
	}
	return strings.TrimSpace(string(out)), nil
}
