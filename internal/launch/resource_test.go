package launch_test

import (
	"testing"

	"github.com/INTO-CPS-Association/unifmu-sub001/internal/launch"
)

func TestResourceDirFileURI(t *testing.T) {
	got, err := launch.ResourceDir("file:///home/user/fmus/bouncing_ball/resources")
	if err != nil {
		t.Fatalf("ResourceDir: %v", err)
	}
	if got != "/home/user/fmus/bouncing_ball/resources" {
		t.Errorf("ResourceDir = %q, want %q", got, "/home/user/fmus/bouncing_ball/resources")
	}
}

func TestResourceDirBarePath(t *testing.T) {
	got, err := launch.ResourceDir("/tmp/resources")
	if err != nil {
		t.Fatalf("ResourceDir: %v", err)
	}
	if got != "/tmp/resources" {
		t.Errorf("ResourceDir = %q, want %q", got, "/tmp/resources")
	}
}

func TestResourceDirEmpty(t *testing.T) {
	if _, err := launch.ResourceDir(""); err == nil {
		t.Fatal("ResourceDir(\"\"): want error, got nil")
	}
}

func TestResourceDirUnsupportedScheme(t *testing.T) {
	if _, err := launch.ResourceDir("http://example.com/resources"); err == nil {
		t.Fatal("ResourceDir(http://...): want error, got nil")
	}
}
