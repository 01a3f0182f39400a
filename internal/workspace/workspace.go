package workspace

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/syclconfigure/internal/logfields"
)

// DefaultBuildSubdir is the build directory name under the source root.
const DefaultBuildSubdir = "build"

// SourceDetector returns the source root enclosing start, or an error if
// there is none.
type SourceDetector func(start string) (string, error)

// Layout is a resolved pair of absolute directories.
type Layout struct {
	SourceDir string
	BuildDir  string
}

// Manager handles directory resolution and creation.
type Manager struct {
	baseDir string
	detect  SourceDetector
}

// NewManager creates a manager resolving relative paths against baseDir
// (the working directory when empty).
func NewManager(baseDir string) *Manager {
	return &Manager{baseDir: baseDir}
}

// WithSourceDetector sets the fallback used when no source dir is given.
func (m *Manager) WithSourceDetector(d SourceDetector) *Manager {
	m.detect = d
	return m
}

// Resolve returns absolute source and build directories. Nothing is created.
func (m *Manager) Resolve(srcDir, buildDir string) (Layout, error) {
	base, err := m.base()
	if err != nil {
		return Layout{}, err
	}

	var l Layout
	switch {
	case srcDir != "":
		l.SourceDir = m.abs(base, srcDir)
	case m.detect != nil:
		root, derr := m.detect(base)
		if derr != nil {
			slog.Debug("Source root not detected, using base directory", logfields.Path(base), logfields.Error(derr))
			l.SourceDir = base
		} else {
			l.SourceDir = root
		}
	default:
		l.SourceDir = base
	}

	if buildDir != "" {
		l.BuildDir = m.abs(base, buildDir)
	} else {
		l.BuildDir = filepath.Join(l.SourceDir, DefaultBuildSubdir)
	}
	return l, nil
}

// Create ensures the build directory exists.
func (m *Manager) Create(l Layout) error {
	info, err := os.Stat(l.BuildDir)
	switch {
	case err == nil && info.IsDir():
		slog.Debug("Using existing build directory", logfields.Path(l.BuildDir))
		return nil
	case err == nil:
		return fmt.Errorf("build path exists and is not a directory: %s", l.BuildDir)
	case !errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("failed to stat build directory: %w", err)
	}

	if err := os.MkdirAll(l.BuildDir, 0o750); err != nil {
		return fmt.Errorf("failed to create build directory: %w", err)
	}
	slog.Info("Created build directory", logfields.Path(l.BuildDir))
	return nil
}

func (m *Manager) base() (string, error) {
	if m.baseDir != "" {
		return filepath.Abs(m.baseDir)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to determine working directory: %w", err)
	}
	return wd, nil
}

func (m *Manager) abs(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}
