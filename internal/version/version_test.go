package version

import "testing"

func withBuildInfo(t *testing.T, version, commit, built string) {
	t.Helper()
	oldV, oldC, oldB := Version, GitCommit, BuildTime
	t.Cleanup(func() { Version, GitCommit, BuildTime = oldV, oldC, oldB })
	Version, GitCommit, BuildTime = version, commit, built
}

func TestString(t *testing.T) {
	tests := []struct {
		name                   string
		version, commit, built string
		want                   string
	}{
		{"defaults", unknown, unknown, unknown, "unknown"},
		{"version only", "v0.3.0", unknown, unknown, "v0.3.0"},
		{"with commit", "v0.3.0", "1a2b3c4", unknown, "v0.3.0 (commit 1a2b3c4)"},
		{"full", "v0.3.0", "1a2b3c4", "2026-10-17T10:00:00Z", "v0.3.0 (commit 1a2b3c4) built 2026-10-17T10:00:00Z"},
		{"empty commit ignored", "v0.3.0", "", "2026-10-17T10:00:00Z", "v0.3.0 built 2026-10-17T10:00:00Z"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withBuildInfo(t, tt.version, tt.commit, tt.built)
			if got := String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}
