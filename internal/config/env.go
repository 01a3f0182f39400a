package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables understood by the tool.
const (
	EnvCMake    = "SYCL_CONFIGURE_CMAKE"
	EnvLogLevel = "SYCL_CONFIGURE_LOG_LEVEL"
)

// DefaultEnvFiles are tried in order by LoadEnvFiles.
var DefaultEnvFiles = []string{".env", ".env.local"}

// LoadEnvFiles loads KEY=VALUE files into the process environment.
// Missing files are skipped; variables already set are not overwritten.
// It returns the files that were loaded.
func LoadEnvFiles(paths ...string) ([]string, error) {
	var loaded []string
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return loaded, err
		}
		slog.Debug("Loaded environment file", "path", p)
		loaded = append(loaded, p)
	}
	return loaded, nil
}

// CMakeBinary resolves the configure binary: explicit flag, then
// SYCL_CONFIGURE_CMAKE, then the preset, falling back to "" (runner default).
func CMakeBinary(flag string, preset *Preset) string {
	if flag != "" {
		return flag
	}
	if v := os.Getenv(EnvCMake); v != "" {
		return v
	}
	if preset != nil {
		return preset.CMake
	}
	return ""
}
