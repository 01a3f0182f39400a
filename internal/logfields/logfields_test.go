package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"RunID", KeyRunID, "abc", RunID("abc")},
		{"Stage", KeyStage, "derive", Stage("derive")},
		{"Binary", KeyBinary, "/usr/bin/cmake", Binary("/usr/bin/cmake")},
		{"Generator", KeyGenerator, "Ninja", Generator("Ninja")},
		{"BuildType", KeyBuildType, "Release", BuildType("Release")},
		{"SourceDir", KeySourceDir, "/src", SourceDir("/src")},
		{"BuildDir", KeyBuildDir, "/src/build", BuildDir("/src/build")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"Revision", KeyRevision, "deadbeef", Revision("deadbeef")},
		{"Status", KeyStatus, "failed", Status("failed")},
		{"BuildNumber", KeyBuildNumber, "42", BuildNumber("42")},
		{"Branch", KeyBranch, "feature", Branch("feature")},
		{"BaseBranch", KeyBaseBranch, "sycl", BaseBranch("sycl")},
		{"PRNumber", KeyPRNumber, "1234", PRNumber("1234")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

// TestNumericHelpers verifies keys for numeric & float helpers.
func TestNumericHelpers(t *testing.T) {
	if v := ExitCode(3); v.Key != KeyExitCode || v.Value.Int64() != 3 {
		t.Fatalf("ExitCode mismatch: %v", v)
	}
	if v := DurationMS(12.5); v.Key != KeyDurationMS {
		t.Fatalf("DurationMS key mismatch: %s", v.Key)
	}
}

// TestErrorHelper ensures Error() handles nil and non-nil errors predictably.
func TestErrorHelper(t *testing.T) {
	attr := Error(nil)
	if attr.Key != KeyError {
		t.Fatalf("Error key mismatch: %s", attr.Key)
	}
	if attr.Value.String() != "" {
		t.Fatalf("Expected empty error string, got %s", attr.Value.String())
	}
	if got := Error(errors.New("boom")).Value.String(); got != "boom" {
		t.Fatalf("Expected boom, got %s", got)
	}
}
