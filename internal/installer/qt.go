package installer

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"install-deps/internal/cmdutil"
	"install-deps/internal/config"
	"install-deps/internal/logger"
)

// WindowsQt installs the bundled Qt toolkit on Windows. Qt is not available
// through Chocolatey in the versions the build needs, so module archives are
// fetched from a mirror and unpacked into a versioned directory
// (<install_dir>\<version>), which doubles as the "already installed" marker.
type WindowsQt struct {
	cfg config.QtConfig
	run cmdutil.Runner
}

// NewWindowsQt creates a toolkit installer from the loaded Qt configuration.
func NewWindowsQt(cfg config.QtConfig, run cmdutil.Runner) *WindowsQt {
	return &WindowsQt{cfg: cfg, run: run}
}

// InstallDir returns the versioned install directory if the toolkit is
// already present there, or "" when a fresh install is needed. Repeated runs
// with the same configuration keep taking the skip path.
func (qt *WindowsQt) InstallDir() string {
	dir := filepath.Join(qt.cfg.InstallDir, qt.cfg.Version)
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir
	}
	return ""
}

// Install downloads every configured Qt module archive from the mirror and
// extracts it into the versioned install directory.
func (qt *WindowsQt) Install() error {
	dir := filepath.Join(qt.cfg.InstallDir, qt.cfg.Version)
	logger.Info("Installing Qt %s to: %s\n", qt.cfg.Version, dir)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create Qt install dir: %w", err)
	}

	for _, module := range qt.cfg.Modules {
		url := qt.moduleURL(module)
		archive := filepath.Join(os.TempDir(), path.Base(url))

		logger.Info("Downloading %s...\n", path.Base(url))
		if err := downloadFile(url, archive); err != nil {
			return err
		}

		if _, err := extractArchive(archive, dir); err != nil {
			return fmt.Errorf("failed to extract %s: %w", module, err)
		}
		_ = os.Remove(archive)
	}

	logger.Info("Installed Qt %s\n", qt.cfg.Version)
	return nil
}

// moduleURL builds the mirror URL for one module archive, following the
// mirror layout <base>/<version>/<module>-<version>-<arch>.<archive_ext>
func (qt *WindowsQt) moduleURL(module string) string {
	return fmt.Sprintf("%s/%s/%s-%s-%s.%s",
		qt.cfg.MirrorURL, qt.cfg.Version, module, qt.cfg.Version, qt.cfg.Arch, qt.cfg.ArchiveExt)
}

// SetEnvVars persists environment variables pointing at the Qt install so
// later build steps can locate the toolkit. setx writes the user-level
// persistent environment; the current process environment is updated too so
// a build started from this same session also sees the values.
func (qt *WindowsQt) SetEnvVars() error {
	dir := filepath.Join(qt.cfg.InstallDir, qt.cfg.Version)

	vars := map[string]string{
		"CMAKE_PREFIX_PATH": dir,
		"QT_ROOT_DIR":       dir,
	}
	for name, value := range vars {
		logger.Info("Setting %s to: %s\n", name, value)
		if err := qt.run.Run(fmt.Sprintf(`setx %s "%s"`, name, value), true); err != nil {
			return err
		}
		if err := os.Setenv(name, value); err != nil {
			return err
		}
	}
	return nil
}

// downloadFile downloads the content at url to destPath, drawing a progress
// bar sized from the Content-Length header.
func downloadFile(url, destPath string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to GET %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close response body: %s\n", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download of %s failed: HTTP status %d", url, resp.StatusCode)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", destPath, err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			logger.Error("[ERROR] Failed to close destination file: %s\n", cerr)
		}
	}()

	bar := progressbar.DefaultBytes(resp.ContentLength, path.Base(destPath))
	if _, err := io.Copy(io.MultiWriter(out, bar), resp.Body); err != nil {
		return fmt.Errorf("failed to write %s: %w", destPath, err)
	}

	logger.Debug("[DEBUG] Downloaded %s to: %s\n", url, destPath)
	return nil
}
