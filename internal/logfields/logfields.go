package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID       = "run_id"
	KeyStage       = "stage"
	KeyDurationMS  = "duration_ms"
	KeyBinary      = "binary"
	KeyGenerator   = "generator"
	KeyBuildType   = "build_type"
	KeySourceDir   = "source_dir"
	KeyBuildDir    = "build_dir"
	KeyPath        = "path"
	KeyRevision    = "revision"
	KeyExitCode    = "exit_code"
	KeyStatus      = "status"
	KeyBuildNumber = "build_number"
	KeyBranch      = "branch"
	KeyBaseBranch  = "base_branch"
	KeyPRNumber    = "pr_number"
	KeyError       = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr         { return slog.String(KeyRunID, id) }
func Stage(name string) slog.Attr       { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr   { return slog.Float64(KeyDurationMS, ms) }
func Binary(path string) slog.Attr      { return slog.String(KeyBinary, path) }
func Generator(g string) slog.Attr      { return slog.String(KeyGenerator, g) }
func BuildType(t string) slog.Attr      { return slog.String(KeyBuildType, t) }
func SourceDir(path string) slog.Attr   { return slog.String(KeySourceDir, path) }
func BuildDir(path string) slog.Attr    { return slog.String(KeyBuildDir, path) }
func Path(path string) slog.Attr        { return slog.String(KeyPath, path) }
func Revision(rev string) slog.Attr     { return slog.String(KeyRevision, rev) }
func ExitCode(code int) slog.Attr       { return slog.Int(KeyExitCode, code) }
func Status(s string) slog.Attr         { return slog.String(KeyStatus, s) }
func BuildNumber(n string) slog.Attr    { return slog.String(KeyBuildNumber, n) }
func Branch(b string) slog.Attr         { return slog.String(KeyBranch, b) }
func BaseBranch(b string) slog.Attr     { return slog.String(KeyBaseBranch, b) }
func PRNumber(n string) slog.Attr       { return slog.String(KeyPRNumber, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
