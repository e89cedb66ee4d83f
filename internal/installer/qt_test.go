package installer

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"install-deps/internal/config"
)

// qtMirror serves zip module archives the way a repackaging mirror would,
// recording the paths requested.
func qtMirror(t *testing.T, entries map[string]string) (*httptest.Server, *[]string) {
	t.Helper()

	archive := filepath.Join(t.TempDir(), "module.zip")
	writeZip(t, archive, entries)
	data, err := os.ReadFile(archive)
	if err != nil {
		t.Fatal(err)
	}

	var requested []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = append(requested, r.URL.Path)
		if !strings.HasSuffix(r.URL.Path, ".zip") {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write(data)
	}))
	t.Cleanup(srv.Close)

	return srv, &requested
}

func TestWindowsQt_InstallDownloadsAndExtracts(t *testing.T) {
	entries := map[string]string{
		"qtbase/bin/qmake.exe":   "qmake",
		"qtbase/lib/Qt6Core.dll": "core",
	}
	srv, requested := qtMirror(t, entries)

	cfg := config.Config{
		Windows: config.WindowsConfig{
			Qt: config.QtConfig{
				Version:    "6.7.2",
				InstallDir: t.TempDir(),
				MirrorURL:  srv.URL,
				Arch:       "win64_msvc2022_64",
				ArchiveExt: "zip",
				Modules:    []string{"qtbase"},
			},
		},
	}
	qtCfg, err := cfg.Qt()
	if err != nil {
		t.Fatal(err)
	}

	qt := NewWindowsQt(qtCfg, &fakeRunner{})
	if err := qt.Install(); err != nil {
		t.Fatalf("Install failed: %v", err)
	}

	want := "/6.7.2/qtbase-6.7.2-win64_msvc2022_64.zip"
	if len(*requested) != 1 || (*requested)[0] != want {
		t.Errorf("requested %v, want exactly %q", *requested, want)
	}

	versioned := filepath.Join(qtCfg.InstallDir, qtCfg.Version)
	assertExtracted(t, versioned, entries)

	// The fresh install must now satisfy the already-installed check.
	if dir := qt.InstallDir(); dir != versioned {
		t.Errorf("InstallDir after install = %q, want %q", dir, versioned)
	}
}

func TestWindowsQt_InstallFailsOnMissingArchive(t *testing.T) {
	srv, _ := qtMirror(t, map[string]string{"qtbase/bin/qmake.exe": "qmake"})

	cfg := config.QtConfig{
		Version:    "6.7.2",
		InstallDir: t.TempDir(),
		MirrorURL:  srv.URL,
		Arch:       "win64_msvc2022_64",
		ArchiveExt: "7z", // The mirror only serves .zip, so this 404s.
		Modules:    []string{"qtbase"},
	}

	qt := NewWindowsQt(cfg, &fakeRunner{})
	err := qt.Install()
	if err == nil {
		t.Fatal("a missing archive should fail the install")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("the error should carry the HTTP status, got %v", err)
	}
}

func TestDownloadFile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("payload"))
	}))
	t.Cleanup(srv.Close)

	dest := filepath.Join(t.TempDir(), "archive.7z")
	if err := downloadFile(srv.URL+"/archive.7z", dest); err != nil {
		t.Fatalf("downloadFile failed: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "payload" {
		t.Errorf("downloaded %q, want %q", data, "payload")
	}
}

func TestDownloadFile_ReportsHTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	err := downloadFile(srv.URL+"/missing.7z", filepath.Join(t.TempDir(), "out.7z"))
	if err == nil {
		t.Fatal("a non-200 response should fail the download")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("the error should carry the HTTP status, got %v", err)
	}
}
