package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestManager_ResolveExplicit(t *testing.T) {
	base := t.TempDir()
	mgr := NewManager(base)

	l, err := mgr.Resolve("src", "/abs/out/../obj")
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if want := filepath.Join(base, "src"); l.SourceDir != want {
		t.Errorf("SourceDir = %s, want %s", l.SourceDir, want)
	}
	if l.BuildDir != "/abs/obj" {
		t.Errorf("BuildDir = %s, want /abs/obj", l.BuildDir)
	}
}

func TestManager_ResolveDefaultsBuildUnderSource(t *testing.T) {
	base := t.TempDir()
	l, err := NewManager(base).Resolve("/repo", "")
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if l.BuildDir != "/repo/build" {
		t.Errorf("BuildDir = %s, want /repo/build", l.BuildDir)
	}
}

func TestManager_ResolveUsesDetector(t *testing.T) {
	base := t.TempDir()
	var seen string
	mgr := NewManager(base).WithSourceDetector(func(start string) (string, error) {
		seen = start
		return "/detected/root", nil
	})

	l, err := mgr.Resolve("", "")
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if seen != base {
		t.Errorf("detector started at %s, want %s", seen, base)
	}
	if l.SourceDir != "/detected/root" || l.BuildDir != "/detected/root/build" {
		t.Errorf("unexpected layout %+v", l)
	}
}

func TestManager_ResolveDetectorFailureFallsBack(t *testing.T) {
	base := t.TempDir()
	mgr := NewManager(base).WithSourceDetector(func(string) (string, error) {
		return "", errors.New("not a repository")
	})

	l, err := mgr.Resolve("", "")
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if l.SourceDir != base {
		t.Errorf("SourceDir = %s, want %s", l.SourceDir, base)
	}
}

func TestManager_Create(t *testing.T) {
	base := t.TempDir()
	l := Layout{SourceDir: base, BuildDir: filepath.Join(base, "a", "b", "build")}
	mgr := NewManager(base)

	if err := mgr.Create(l); err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if info, err := os.Stat(l.BuildDir); err != nil || !info.IsDir() {
		t.Fatalf("build directory not created: %v", err)
	}

	// idempotent
	if err := mgr.Create(l); err != nil {
		t.Fatalf("second Create() failed: %v", err)
	}
}

func TestManager_CreateRejectsFile(t *testing.T) {
	base := t.TempDir()
	file := filepath.Join(base, "build")
	if err := os.WriteFile(file, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := NewManager(base).Create(Layout{SourceDir: base, BuildDir: file}); err == nil {
		t.Fatal("expected error when build path is a file")
	}
}
