package version

import (
	"strings"
	"testing"
)

func TestDefaultVersion(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if !strings.HasPrefix(String(), "declc ") {
		t.Errorf("String() = %q, want a declc prefix", String())
	}
}

func TestStringIncludesBuildInfo(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	defer func() {
		GitCommit, BuildDate = origCommit, origDate
	}()

	GitCommit = "abc123"
	BuildDate = "2026-08-27T00:00:00Z"
	s := String()
	if !strings.Contains(s, "(abc123)") {
		t.Errorf("String() = %q, missing commit", s)
	}
	if !strings.Contains(s, "built 2026-08-27T00:00:00Z") {
		t.Errorf("String() = %q, missing build date", s)
	}
}
