package launch_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/INTO-CPS-Association/unifmu-sub001/internal/launch"
)

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "launch.toml"), []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return dir
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	_, err := launch.Load(dir)
	if !errors.Is(err, launch.ErrNotFound) {
		t.Fatalf("Load: want ErrNotFound, got %v", err)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	dir := writeManifest(t, "this is not [ valid toml")
	_, err := launch.Load(dir)
	if !errors.Is(err, launch.ErrInvalid) {
		t.Fatalf("Load: want ErrInvalid, got %v", err)
	}
}

func TestLoadDefaultsLocationToLocal(t *testing.T) {
	dir := writeManifest(t, "linux = [\"python3\", \"main.py\"]\n")
	cfg, err := launch.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Location != launch.LocationLocal {
		t.Errorf("Location = %q, want %q", cfg.Location, launch.LocationLocal)
	}
}

func TestArgvMissingOSEntry(t *testing.T) {
	// Write a manifest with no vector for the OS running this test.
	var contents string
	switch runtime.GOOS {
	case "linux":
		contents = "windows = [\"a.exe\"]\n"
	default:
		contents = "linux = [\"python3\"]\n"
	}

	dir := writeManifest(t, contents)
	cfg, err := launch.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	_, err = cfg.Argv()
	if !errors.Is(err, launch.ErrUnsupportedOS) {
		t.Fatalf("Argv: want ErrUnsupportedOS, got %v", err)
	}
}

func TestArgvSelectsRunningOS(t *testing.T) {
	contents := "location = \"Local\"\nlinux = [\"python3\", \"main.py\"]\nwindows = [\"py.exe\", \"main.py\"]\nmacos = [\"python3\", \"main.py\"]\n"
	dir := writeManifest(t, contents)
	cfg, err := launch.Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	argv, err := cfg.Argv()
	if err != nil {
		t.Fatalf("Argv: %v", err)
	}
	if len(argv) == 0 {
		t.Fatal("expected a non-empty argv for the running OS")
	}
}
